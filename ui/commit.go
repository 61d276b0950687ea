package ui

import "github.com/pthm-cable/galaxy/pointfield"

// Draft tracks parameter edits between commits. Sliders edit the working
// copy continuously; the record is only handed out when an interaction
// finishes with a change, so a drag produces a single regeneration.
type Draft struct {
	committed pointfield.Settings
	working   pointfield.Settings
	editing   bool
}

// NewDraft starts from the committed settings s.
func NewDraft(s pointfield.Settings) *Draft {
	return &Draft{committed: s, working: s}
}

// Working returns the settings currently shown in the panel.
func (d *Draft) Working() *pointfield.Settings {
	return &d.working
}

// Committed returns the last committed settings.
func (d *Draft) Committed() pointfield.Settings {
	return d.committed
}

// Editing reports whether an interaction is in progress.
func (d *Draft) Editing() bool {
	return d.editing
}

// Edit marks the start (or continuation) of an interaction.
func (d *Draft) Edit() {
	d.editing = true
}

// Finish ends the interaction. It returns the full settings record and
// true if they differ from the last commit.
func (d *Draft) Finish() (pointfield.Settings, bool) {
	d.editing = false
	if d.working == d.committed {
		return d.committed, false
	}
	d.committed = d.working
	return d.committed, true
}

// Revert drops uncommitted edits, e.g. after the committed record was rejected.
func (d *Draft) Revert(s pointfield.Settings) {
	d.committed = s
	d.working = s
	d.editing = false
}
