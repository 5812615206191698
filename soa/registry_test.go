package soa

import "testing"

func implSet(record string) ImplSet {
	return ImplSet{
		Record: record,
		Types: []TypeImpl{
			{Name: record + "Vec", Kind: "container", Marker: true},
		},
	}
}

func TestRegistry_PublishAfterReady(t *testing.T) {
	var got []string
	r := &Registry{}
	r.Ready(func(s ImplSet) { got = append(got, s.Record) })

	r.Publish(implSet("Particle"))

	if len(got) != 1 || got[0] != "Particle" {
		t.Errorf("delivered = %v", got)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", r.Pending())
	}
}

func TestRegistry_BufferUntilReady(t *testing.T) {
	r := &Registry{}
	r.Publish(implSet("Particle"))
	r.Publish(implSet("Cheese"))

	if r.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", r.Pending())
	}

	var got []string
	r.Ready(func(s ImplSet) { got = append(got, s.Record) })

	if len(got) != 2 || got[0] != "Particle" || got[1] != "Cheese" {
		t.Errorf("flush order = %v, want [Particle Cheese]", got)
	}
	if r.Pending() != 0 {
		t.Errorf("Pending = %d after flush", r.Pending())
	}

	// later publishes go straight through
	r.Publish(implSet("Point"))
	if len(got) != 3 || got[2] != "Point" {
		t.Errorf("post-flush delivery = %v", got)
	}
}

func TestRegistry_NilConsumer(t *testing.T) {
	r := &Registry{}
	r.Publish(implSet("Particle"))
	r.Ready(nil)
	if r.Pending() != 1 {
		t.Errorf("Pending = %d, want 1 (nil consumer must not flush)", r.Pending())
	}
}
