package progress

// Transition describes a successful engine operation.
type Transition struct {
	Op       Op
	LessonID string
	// StageID is the stage the operation acted on: the first stage for
	// select, the completed stage for advance, the new stage for retreat.
	StageID    string
	StageIndex int
	// LessonCompleted is set when an advance completed the lesson.
	LessonCompleted bool
	// State is the progress after the operation.
	State State
}

// Observer receives transitions after every successful operation.
type Observer interface {
	OnTransition(Transition)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Transition)

func (f ObserverFunc) OnTransition(t Transition) { f(t) }

type subscription struct {
	id       int
	observer Observer
}

// Subscribe registers o and returns a function that removes it. Observers are
// called synchronously, in subscription order, before the operation returns.
func (e *Engine) Subscribe(o Observer) (unsubscribe func()) {
	e.nextSubID++
	id := e.nextSubID
	e.observers = append(e.observers, subscription{id: id, observer: o})
	return func() {
		for i, s := range e.observers {
			if s.id == id {
				e.observers = append(e.observers[:i:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify(t Transition) {
	if len(e.observers) == 0 {
		return
	}
	for _, s := range e.observers {
		// Each observer gets its own copy so one cannot corrupt another's view.
		t.State = e.State()
		s.observer.OnTransition(t)
	}
}
