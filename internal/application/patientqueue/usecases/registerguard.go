package usecases

import "sync"

// registerGuard serializes registrations per doctor. The queue number
// generator counts existing entries and the duplicate-slot check precedes
// the insert; without per-doctor serialization two concurrent registrations
// could mint the same number or double-book a slot.
type registerGuard struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newRegisterGuard() *registerGuard {
	return &registerGuard{locks: make(map[uint]*sync.Mutex)}
}

// forDoctor returns the mutex guarding registrations for the given doctor,
// creating it on first use. Doctors are long-lived reference data, so the
// map only ever holds one lock per doctor.
func (g *registerGuard) forDoctor(doctorID uint) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	lock, ok := g.locks[doctorID]
	if !ok {
		lock = &sync.Mutex{}
		g.locks[doctorID] = lock
	}
	return lock
}
