package main

// InputReader is the digital-input backend.  Read returns the raw logic level
// of a registered pin (true = high).  Close releases every pin registration
// and must be safe to call more than once.
type InputReader interface {
	Read(pin int) (bool, error)
	Close() error
}

// buttonPressed interprets the raw level of a momentary button wired to a
// pull-up input: the pin idles high and reads low while the button is held.
// Read faults come back as *InputError.
func buttonPressed(r InputReader, pin int) (bool, error) {
	high, err := r.Read(pin)
	if err != nil {
		return false, &InputError{Pin: pin, Err: err}
	}
	return !high, nil
}
