package profiler

// MessageLevel selects which form of a Message is displayed.
type MessageLevel int

const (
	// NoMessage suppresses the label. Treated like BriefMessage today;
	// reserved for collaborators that want no label at all.
	NoMessage MessageLevel = iota
	// BriefMessage selects the short label form.
	BriefMessage
	// DetailedMessage selects the expanded label form.
	DetailedMessage
)

// Message supplies an entry's label lazily. The tree asks for the level
// only once the entry is released; open entries always display the brief
// form. Implementations must not retain the entry.
type Message interface {
	// MessageLevel decides which form to display for the released entry.
	MessageLevel(e *Entry) MessageLevel
	// BriefMessage returns the short label form.
	BriefMessage() string
	// DetailedMessage returns the expanded label form.
	DetailedMessage() string
}
