//go:build xgxnotrace

package xgxunion

// trackingEnabled selects the pass-through implementation of record.
const trackingEnabled = false

// record carries nothing in this build; Traced[E] is a transparent
// newtype over E.
type record struct{}

func captureRecord(int) record { return record{} }

func (record) withContext(string) record { return record{} }

func (record) chain() []string { return nil }

func (record) stack() Stack { return nil }
