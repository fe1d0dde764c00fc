package widget

// Seed returns the built-in dashboard used when no seed file is configured.
func Seed() []Category {
	return []Category{
		{
			Name: "CSPM Executive Dashboard",
			Widgets: []Widget{
				{
					ID:    NewID(),
					Title: "Cloud Accounts",
					Data: DonutData{
						Label: "Connected",
						Value: 50,
						Total: 2,
						Segments: []Segment{
							{Value: 50, Color: "blue"},
							{Value: 50, Color: "gray"},
						},
					},
				},
				{
					ID:    NewID(),
					Title: "Cloud Account Risk",
					Data: DonutData{
						Label: "Total",
						Value: 70,
						Total: 9659,
						Segments: []Segment{
							{Value: 20, Color: "red"},
							{Value: 15, Color: "yellow"},
							{Value: 5, Color: "orange"},
							{Value: 30, Color: "green"},
						},
					},
				},
			},
		},
		{
			Name: "CWPP Dashboard",
			Widgets: []Widget{
				{ID: NewID(), Title: "Top 5 Namespace Specific Alerts", Data: PlaceholderData{Text: "Top 5 Namespace Specific Alerts"}},
				{ID: NewID(), Title: "Workload Alerts", Data: PlaceholderData{Text: "Workload Alerts"}},
			},
		},
		{
			Name: "Registry Scan",
			Widgets: []Widget{
				{ID: NewID(), Title: "Image Risk Assessment", Data: SliderData{Label: "Critical", Value: 50, Max: 1470, Color: "red"}},
				{ID: NewID(), Title: "Image Security Issues", Data: SliderData{Label: "High", Value: 60, Max: 2, Color: "orange"}},
			},
		},
	}
}
