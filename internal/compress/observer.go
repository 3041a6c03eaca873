package compress

// Observer receives status callbacks from the controller. The controller
// stays agnostic to presentation: it reports rung and attempt lifecycle plus
// raw encode progress, and the caller renders however it likes.
type Observer interface {
	RungStarted(rungIndex, totalRungs int, rung Rung)
	AttemptStarted(attempt int, plan EncodePlan)
	AttemptFinished(attempt int, sizeBytes, targetBytes int64)
	EncodeProgress(fraction float64)
}

// NopObserver discards all callbacks.
type NopObserver struct{}

func (NopObserver) RungStarted(int, int, Rung)        {}
func (NopObserver) AttemptStarted(int, EncodePlan)    {}
func (NopObserver) AttemptFinished(int, int64, int64) {}
func (NopObserver) EncodeProgress(float64)            {}

var _ Observer = NopObserver{}
