package routine

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Kind tags a scheduling event.
type Kind int

const (
	// KindDispatch is the base context switching into a routine.
	KindDispatch Kind = iota + 1
	// KindYield is a parked routine passing control on.
	KindYield
	// KindReturn is a routine body returning; its slot is retired before the
	// switch.
	KindReturn
	// KindDone is Run draining: the scan wrapped with nothing Ready and the
	// base context keeps control. No switch is performed.
	KindDone
)

func (k Kind) String() string {
	switch k {
	case KindDispatch:
		return "dispatch"
	case KindYield:
		return "yield"
	case KindReturn:
		return "return"
	case KindDone:
		return "done"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Event is one context switch. From and To are slot indexes; 0 is the base
// context. Events are emitted before the switch itself, on the switching-out
// side. KindDone is the exception: it records Run returning with the pool
// drained, and both indexes are the base slot.
type Event struct {
	Kind Kind
	From int
	To   int
}

func (ev Event) String() string {
	return fmt.Sprintf("%s %d->%d", ev.Kind, ev.From, ev.To)
}

// Tracer observes every context switch the runtime performs. Trace is called
// from the switching-out code path, so implementations must not yield and
// must not block on work owned by another slot.
type Tracer interface {
	Trace(Event)
}

// SetTracer installs t; nil removes the current tracer.
func (r *Runtime) SetTracer(t Tracer) { r.tracer = t }

func (r *Runtime) emit(ev Event) {
	if r.tracer != nil {
		r.tracer.Trace(ev)
	}
}

// Recorder is a Tracer that accumulates events in switch order.
type Recorder struct {
	Events []Event
}

func (rec *Recorder) Trace(ev Event) { rec.Events = append(rec.Events, ev) }

// Reset discards the recorded events.
func (rec *Recorder) Reset() { rec.Events = rec.Events[:0] }

// Strings renders the recorded events one per entry, in switch order.
func (rec *Recorder) Strings() []string {
	s := make([]string, len(rec.Events))
	for i, ev := range rec.Events {
		s[i] = ev.String()
	}
	return s
}

// Protobuf field numbers of one trace record.
const (
	traceFieldKind = 1
	traceFieldFrom = 2
	traceFieldTo   = 3
)

// MarshalAppend appends the recorded events to b as a sequence of
// length-delimited protobuf records and returns the extended buffer.
func (rec *Recorder) MarshalAppend(b []byte) []byte {
	for _, ev := range rec.Events {
		var p []byte
		p = protowire.AppendTag(p, traceFieldKind, protowire.VarintType)
		p = protowire.AppendVarint(p, uint64(ev.Kind))
		p = protowire.AppendTag(p, traceFieldFrom, protowire.VarintType)
		p = protowire.AppendVarint(p, uint64(ev.From))
		p = protowire.AppendTag(p, traceFieldTo, protowire.VarintType)
		p = protowire.AppendVarint(p, uint64(ev.To))
		b = protowire.AppendBytes(b, p)
	}
	return b
}

// Unmarshal appends the events encoded in b to the recorder, returning the
// number of bytes consumed.
func (rec *Recorder) Unmarshal(b []byte) (int, error) {
	off := 0
	for off < len(b) {
		p, n := protowire.ConsumeBytes(b[off:])
		if n < 0 {
			return off, protowire.ParseError(n)
		}
		off += n

		var ev Event
		for len(p) > 0 {
			num, typ, n := protowire.ConsumeTag(p)
			if n < 0 {
				return off, protowire.ParseError(n)
			}
			p = p[n:]
			if typ != protowire.VarintType {
				return off, fmt.Errorf("trace record field %d: unexpected wire type %d", num, typ)
			}
			v, n := protowire.ConsumeVarint(p)
			if n < 0 {
				return off, protowire.ParseError(n)
			}
			p = p[n:]
			switch num {
			case traceFieldKind:
				ev.Kind = Kind(v)
			case traceFieldFrom:
				ev.From = int(v)
			case traceFieldTo:
				ev.To = int(v)
			}
		}
		rec.Events = append(rec.Events, ev)
	}
	return off, nil
}
