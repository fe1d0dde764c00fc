// Package store holds the dashboard state: an ordered list of categories,
// each an ordered list of widgets.
//
// State only changes through Dispatch. Transitions are the pure functions in
// reducer.go; the Store commits their result and notifies observers
// synchronously, so a render after Dispatch always sees the new state.
package store

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"

	"widgetdash/internal/widget"
)

const tracerName = "widgetdash/store"

// Action is a state transition request.
type Action interface {
	// Name identifies the action in spans and logs.
	Name() string
	apply(cats []widget.Category) ([]widget.Category, error)
	attributes() []attribute.KeyValue
}

// AddWidgetAction inserts Widget into category Category at InsertPosition.
type AddWidgetAction struct {
	Category int
	Widget   widget.Widget
}

// RemoveWidgetAction removes the widget at Index from category Category.
type RemoveWidgetAction struct {
	Category int
	Index    int
}

// RemoveWidgetByIDAction removes the widget with ID from category Category.
type RemoveWidgetByIDAction struct {
	Category int
	ID       string
}

func (AddWidgetAction) Name() string        { return "add_widget" }
func (RemoveWidgetAction) Name() string     { return "remove_widget" }
func (RemoveWidgetByIDAction) Name() string { return "remove_widget_by_id" }

func (a AddWidgetAction) apply(cats []widget.Category) ([]widget.Category, error) {
	return AddWidget(cats, a.Category, a.Widget)
}

func (a RemoveWidgetAction) apply(cats []widget.Category) ([]widget.Category, error) {
	return RemoveWidget(cats, a.Category, a.Index)
}

func (a RemoveWidgetByIDAction) apply(cats []widget.Category) ([]widget.Category, error) {
	return RemoveWidgetByID(cats, a.Category, a.ID)
}

func (a AddWidgetAction) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("widgetdash.category.index", a.Category),
		attribute.String("widgetdash.widget.id", a.Widget.ID),
		attribute.String("widgetdash.widget.kind", a.Widget.Kind().String()),
	}
}

func (a RemoveWidgetAction) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("widgetdash.category.index", a.Category),
		attribute.Int("widgetdash.widget.index", a.Index),
	}
}

func (a RemoveWidgetByIDAction) attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("widgetdash.category.index", a.Category),
		attribute.String("widgetdash.widget.id", a.ID),
	}
}

// Observer receives a snapshot of the state after every committed change.
type Observer func(cats []widget.Category)

// Option configures a Store.
type Option func(*Store)

// WithTracer sets the tracer used for dispatch spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(s *Store) { s.tracer = t }
}

// Store is the single source of truth for dashboard state.
type Store struct {
	mu         sync.Mutex
	categories []widget.Category
	observers  map[int]Observer
	nextObs    int
	tracer     oteltrace.Tracer
}

// New creates a store seeded with a copy of seed.
func New(seed []widget.Category, opts ...Option) *Store {
	s := &Store{
		categories: widget.CloneCategories(seed),
		observers:  make(map[int]Observer),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Categories returns a deep copy of the current state.
func (s *Store) Categories() []widget.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return widget.CloneCategories(s.categories)
}

// IndexOf returns the current index of widget id in category ci, or -1.
func (s *Store) IndexOf(ci int, id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ci < 0 || ci >= len(s.categories) {
		return -1
	}
	return indexOf(s.categories[ci].Widgets, id)
}

// Subscribe registers obs and returns a function that unregisters it.
func (s *Store) Subscribe(obs Observer) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextObs
	s.nextObs++
	s.observers[id] = obs
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Dispatch applies a and, on success, notifies every observer.
// On error the state is left untouched and nobody is notified.
func (s *Store) Dispatch(ctx context.Context, a Action) error {
	_, span := s.tracer.Start(ctx, "store."+a.Name(), oteltrace.WithAttributes(a.attributes()...))
	defer span.End()

	s.mu.Lock()
	next, err := a.apply(s.categories)
	if err != nil {
		s.mu.Unlock()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	s.categories = next
	observers := make([]Observer, 0, len(s.observers))
	for i := 0; i < s.nextObs; i++ {
		if obs, ok := s.observers[i]; ok {
			observers = append(observers, obs)
		}
	}
	s.mu.Unlock()

	for _, obs := range observers {
		obs(s.Categories())
	}
	return nil
}
