package surveillance

import "testing"

func TestTaskStackLIFO(t *testing.T) {
	var s TaskStack
	s.Push(Task{Kind: TaskWait, Timeout: 3}, 0)
	s.Push(Task{Kind: TaskMove, Destination: 2}, 1)

	top, ok := s.Current()
	if !ok || top.Kind != TaskMove || top.Destination != 2 {
		t.Fatalf("expected Move(2) on top, got %+v ok=%v", top, ok)
	}

	popped := s.Pop()
	if popped.Kind != TaskMove {
		t.Fatalf("expected to pop Move first, got %+v", popped)
	}

	top, ok = s.Current()
	if !ok || top.Kind != TaskWait {
		t.Fatalf("expected Wait(3) on top after pop, got %+v ok=%v", top, ok)
	}
}

func TestTaskStackPopEmptyPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic popping an empty stack")
		}
	}()
	var s TaskStack
	s.Pop()
}

func TestWaitTaskCompletion(t *testing.T) {
	var s TaskStack
	s.Push(Task{Kind: TaskWait, Timeout: 2}, 10)
	task, _ := s.Current()

	if task.Completed(Coordinates{}, 10) {
		t.Fatalf("wait task should not complete at its own start tick")
	}
	if task.Completed(Coordinates{}, 11) {
		t.Fatalf("wait task should not complete before timeout elapses")
	}
	if !task.Completed(Coordinates{}, 12) {
		t.Fatalf("wait task should complete once now - start >= timeout")
	}
}

func TestMoveTaskCompletion(t *testing.T) {
	task := Task{Kind: TaskMove, Destination: 5}
	if task.Completed(Coordinates{Domain: 5, Offset: 0.5}, 0) {
		t.Fatalf("move task must not complete with nonzero offset")
	}
	if !task.Completed(Coordinates{Domain: 5, Offset: 0}, 0) {
		t.Fatalf("move task should complete once resident at destination")
	}
}
