package valueobjects

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type TransactionStep string

const (
	StepTransfer  TransactionStep = "transfer"
	StepWithdraw  TransactionStep = "withdraw"
	StepTakeFees  TransactionStep = "take_fees"
	StepSendFunds TransactionStep = "send_funds"
)

var stepLabels = map[TransactionStep]string{
	StepTransfer:  "Sending tokens",
	StepWithdraw:  "Withdrawing",
	StepTakeFees:  "Taking fees",
	StepSendFunds: "Sending funds",
}

type TransactionState string

const (
	TransactionStatePending   TransactionState = "pending"
	TransactionStateConfirmed TransactionState = "confirmed"
	TransactionStateFailed    TransactionState = "failed"
)

// TransactionStatus tracks one multi-step wallet operation. Every change re-renders
// the status and hands it to the display callback.
type TransactionStatus struct {
	mu          sync.Mutex
	operationID string
	title       string
	steps       []TransactionStep
	current     int
	state       TransactionState
	txID        string
	failure     string
	quiet       bool
	onChange    func(rendered string)
}

func NewTransactionStatus(title string, steps []TransactionStep, onChange func(rendered string)) *TransactionStatus {
	if len(steps) == 0 {
		steps = []TransactionStep{StepTransfer}
	}
	if onChange == nil {
		onChange = func(string) {}
	}

	return &TransactionStatus{
		operationID: uuid.NewString(),
		title:       title,
		steps:       append([]TransactionStep(nil), steps...),
		state:       TransactionStatePending,
		onChange:    onChange,
	}
}

func (s *TransactionStatus) OperationID() string {
	return s.operationID
}

func (s *TransactionStatus) CurrentStep() TransactionStep {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps[s.current]
}

func (s *TransactionStatus) State() TransactionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *TransactionStatus) TransactionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txID
}

func (s *TransactionStatus) IsTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != TransactionStatePending
}

// Quiet keeps tracking every change but only publishes the terminal rendering.
func (s *TransactionStatus) Quiet() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quiet = true
}

// Start publishes the initial rendering.
func (s *TransactionStatus) Start() {
	s.update(func() bool { return true })
}

func (s *TransactionStatus) SetTransactionID(txID string) {
	s.update(func() bool {
		if s.state != TransactionStatePending || s.txID == txID {
			return false
		}
		s.txID = txID
		return true
	})
}

// NextStep moves to the following step and clears the tracked transaction id.
// It is a no-op on the last step or after a terminal state.
func (s *TransactionStatus) NextStep() {
	s.update(func() bool {
		if s.state != TransactionStatePending || s.current >= len(s.steps)-1 {
			return false
		}
		s.current++
		s.txID = ""
		return true
	})
}

func (s *TransactionStatus) Confirm() {
	s.update(func() bool {
		if s.state != TransactionStatePending {
			return false
		}
		s.state = TransactionStateConfirmed
		return true
	})
}

func (s *TransactionStatus) Fail(reason string) {
	s.update(func() bool {
		if s.state != TransactionStatePending {
			return false
		}
		s.state = TransactionStateFailed
		s.failure = reason
		return true
	})
}

func (s *TransactionStatus) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderLocked()
}

func (s *TransactionStatus) update(mutate func() bool) {
	s.mu.Lock()
	if !mutate() {
		s.mu.Unlock()
		return
	}
	if s.quiet && s.state == TransactionStatePending {
		s.mu.Unlock()
		return
	}
	rendered := s.renderLocked()
	s.mu.Unlock()

	s.onChange(rendered)
}

func (s *TransactionStatus) renderLocked() string {
	builder := strings.Builder{}
	builder.WriteString(s.title)
	builder.WriteByte('\n')

	for index, step := range s.steps {
		marker := "[ ]"
		switch {
		case index < s.current:
			marker = "[x]"
		case index == s.current && s.state == TransactionStateConfirmed:
			marker = "[x]"
		case index == s.current && s.state == TransactionStateFailed:
			marker = "[!]"
		case index == s.current:
			marker = "[>]"
		}

		label := stepLabels[step]
		if label == "" {
			label = string(step)
		}
		builder.WriteString(marker + " " + label)
		if index == s.current && s.txID != "" {
			builder.WriteString(" (tx " + s.txID + ")")
		}
		builder.WriteByte('\n')
	}

	switch s.state {
	case TransactionStateFailed:
		fmt.Fprintf(&builder, "failed: %s", s.failure)
	default:
		builder.WriteString(string(s.state))
	}
	return builder.String()
}
