package breakout

import "testing"

func TestSchedulerPopDueOrder(t *testing.T) {
	s := NewScheduler()
	s.Schedule(3000, EffectSpeedBoost, 0)
	s.Schedule(1000, EffectFireBall, 0)
	s.Schedule(2000, EffectExpandPaddle, 0)

	if got := s.PopDue(999); len(got) != 0 {
		t.Fatalf("nothing should be due at 999, got %v", got)
	}

	due := s.PopDue(2000)
	if len(due) != 2 {
		t.Fatalf("expected 2 due tasks at 2000, got %d", len(due))
	}
	if due[0].Effect != EffectFireBall || due[1].Effect != EffectExpandPaddle {
		t.Errorf("due order = %v, %v; want FireBall, ExpandPaddle", due[0].Effect, due[1].Effect)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}

	due = s.PopDue(10000)
	if len(due) != 1 || due[0].Effect != EffectSpeedBoost {
		t.Errorf("expected the SpeedBoost task last, got %v", due)
	}
	if s.Len() != 0 {
		t.Errorf("queue should be empty, Len = %d", s.Len())
	}
}

func TestSchedulerEqualTimesKeepOrder(t *testing.T) {
	s := NewScheduler()
	effects := []Effect{EffectExpandPaddle, EffectFireBall, EffectSpeedBoost, EffectExpandPaddle}
	for _, e := range effects {
		s.Schedule(500, e, 0)
	}

	due := s.PopDue(500)
	if len(due) != len(effects) {
		t.Fatalf("expected %d tasks, got %d", len(effects), len(due))
	}
	for i, task := range due {
		if task.Effect != effects[i] {
			t.Errorf("task %d = %v, want %v", i, task.Effect, effects[i])
		}
	}
}

func TestSchedulerPendingByEpoch(t *testing.T) {
	s := NewScheduler()
	s.Schedule(100, EffectFireBall, 0)
	s.Schedule(200, EffectFireBall, 1)
	s.Schedule(300, EffectSpeedBoost, 1)

	if got := s.Pending(0); got != 1 {
		t.Errorf("Pending(0) = %d, want 1", got)
	}
	if got := s.Pending(1); got != 2 {
		t.Errorf("Pending(1) = %d, want 2", got)
	}

	due := s.PopDue(100)
	if len(due) != 1 || due[0].Epoch != 0 {
		t.Errorf("expected the epoch 0 task, got %v", due)
	}
}
