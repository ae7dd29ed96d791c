package touchkit

import "testing"

func TestValidateNotifiesObservers(t *testing.T) {
	g := NewGesture("always", RuleFunc(func(*Node, *TouchGroup) bool { return true }))
	target := NewNode("t", 1, 1)

	var events []ValidationEvent
	g.Observe(func(ev ValidationEvent) { events = append(events, ev) })

	group := NewTouchGroup(target, NewTouchPoint(1, Vec2{}, 0))
	if !g.Validate(target, group) {
		t.Fatal("Validate = false, want true")
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	if events[0].Validated || !events[1].Validated || !events[1].Valid {
		t.Errorf("events = %+v, want before then after", events)
	}
	if events[1].Gesture != "always" || events[1].Target != target {
		t.Errorf("event = %+v", events[1])
	}
	if events[0].Group == group || events[0].Group == events[1].Group {
		t.Error("each observer call should get its own copy")
	}
}

func TestObserverCannotCorruptGroup(t *testing.T) {
	var seen int
	g := NewGesture("count", RuleFunc(func(_ *Node, grp *TouchGroup) bool {
		seen = grp.Len()
		return false
	}))
	g.Observe(func(ev ValidationEvent) { ev.Group.Points = nil })

	group := NewTouchGroup(nil, NewTouchPoint(1, Vec2{}, 0))
	g.Validate(nil, group)
	if seen != 1 || group.Len() != 1 {
		t.Errorf("rule saw %d points, group has %d, want 1 and 1", seen, group.Len())
	}
}

func TestInactiveGestureSkipsRule(t *testing.T) {
	called := false
	g := NewGesture("g", RuleFunc(func(*Node, *TouchGroup) bool {
		called = true
		return true
	}))
	g.SetActive(false)
	if g.Active() {
		t.Error("Active = true after SetActive(false)")
	}
	if g.Validate(nil, NewTouchGroup(nil, NewTouchPoint(1, Vec2{}, 0))) || called {
		t.Error("inactive gesture should be false without calling the rule")
	}
	if g.Validate(nil, nil) {
		t.Error("nil group should be false")
	}
}

func TestObserverRemove(t *testing.T) {
	g := NewGesture("g", RuleFunc(func(*Node, *TouchGroup) bool { return true }))
	calls := 0
	var h ObserverHandle
	h = g.Observe(func(ValidationEvent) {
		calls++
		h.Remove() // removing itself mid-notification is allowed
	})
	other := g.Observe(func(ValidationEvent) { calls += 10 })

	group := NewTouchGroup(nil, NewTouchPoint(1, Vec2{}, 0))
	g.Validate(nil, group)
	if calls != 21 {
		t.Errorf("calls = %d, want 21", calls)
	}

	other.Remove()
	other.Remove()
	ObserverHandle{}.Remove()
	g.Validate(nil, group)
	if calls != 21 {
		t.Errorf("calls = %d after removal, want 21", calls)
	}
}
