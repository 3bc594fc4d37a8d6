package models

import "testing"

func TestSessionValidate(t *testing.T) {
	valid := &Session{
		SessionDate: "2021-01-01",
		MonkeyID:    1,
		RigID:       1,
		TaskID:      1,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid session, got error: %v", err)
	}

	badDate := &Session{SessionDate: "20210101", MonkeyID: 1, RigID: 1, TaskID: 1}
	if err := badDate.Validate(); err == nil {
		t.Fatalf("expected error for malformed date")
	}

	invalid := &Session{SessionDate: "2021-01-01"}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for session without references")
	}
}

func TestHardwareHelpers(t *testing.T) {
	nsp := &Hardware{Name: "Cerebus", Category: CategoryNeuralSignalProcessor}
	if err := nsp.Validate(); err != nil {
		t.Fatalf("expected valid hardware, got error: %v", err)
	}
	if !nsp.IsSignalProcessor() {
		t.Fatalf("expected Cerebus to be a signal processor")
	}

	controller := &Hardware{Name: "Speedgoat", Category: CategoryTaskController}
	if controller.IsSignalProcessor() {
		t.Fatalf("expected Speedgoat not to be a signal processor")
	}

	empty := &Hardware{}
	if err := empty.Validate(); err == nil {
		t.Fatalf("expected error for empty hardware")
	}
}

func TestTaskValidate(t *testing.T) {
	valid := &Task{Name: "pacman", Version: "1.0", ControllerHardwareID: 1}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}

	invalid := &Task{Name: "pacman"}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for task without version")
	}
}

func TestBehaviorRecordingValidate(t *testing.T) {
	valid := &BehaviorRecording{
		SessionID:       1,
		SummaryFilePath: "/server/locker/file.summary",
		SampleRate:      DefaultBehaviorSampleRate,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid recording, got error: %v", err)
	}

	invalid := &BehaviorRecording{SessionID: 1, SummaryFilePath: "x"}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for non-positive sample rate")
	}
}

func TestEphysRecordingValidate(t *testing.T) {
	valid := &EphysRecording{
		SessionID:  1,
		FileID:     0,
		FilePath:   "/server/locker/rec_neu_001.ns5",
		SampleRate: 30000,
		Duration:   12.5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid recording, got error: %v", err)
	}

	invalid := &EphysRecording{SessionID: 1, FileID: -1, FilePath: "x", SampleRate: 1}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for negative file id")
	}
}

func TestEphysChannelValidate(t *testing.T) {
	id := 137
	valid := &EphysChannel{ChannelIndex: 0, ChannelID: &id, Label: ChannelBrain}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid channel, got error: %v", err)
	}

	invalid := &EphysChannel{ChannelIndex: 3}
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected error for channel without label")
	}
}
