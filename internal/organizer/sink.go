package organizer

// Sink receives everything the organizer shows the user. The console
// package renders it on a terminal; tests record it.
type Sink interface {
	// Println writes a normal output line.
	Println(line string)
	// Errorln writes a line to the error stream.
	Errorln(line string)
	// StartProgress begins a progress display of total steps.
	StartProgress(label string, total int)
	// Advance moves the progress display one step and shows item.
	Advance(item string)
	// FinishProgress completes the progress display.
	FinishProgress()
}
