package node

import "reflect"

// Dealer is a worklist of types that visits every type at most once.
type Dealer struct {
	needs []reflect.Type
	done  map[reflect.Type]struct{}
}

// NextNeeds pops the next type that has not been handed out yet.
func (d *Dealer) NextNeeds() (t reflect.Type, ok bool) {
	for len(d.needs) > 0 {
		t, d.needs = d.needs[0], d.needs[1:]

		if _, exists := d.done[t]; !exists {
			d.Done(t)

			return t, true
		}
	}

	return nil, false
}

// Needs queues the types that were not dealt yet.
func (d *Dealer) Needs(types ...reflect.Type) {
	for _, t := range types {
		if t == nil {
			continue
		}

		if _, exists := d.done[t]; !exists {
			d.needs = append(d.needs, t)
		}
	}
}

func (d *Dealer) Done(t reflect.Type) {
	if d.done == nil {
		d.done = make(map[reflect.Type]struct{})
	}

	d.done[t] = struct{}{}
}

// Dealt reports how many distinct types were handed out or marked done.
func (d *Dealer) Dealt() int {
	return len(d.done)
}
