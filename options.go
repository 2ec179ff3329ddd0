package picker

// Option configures a picker surface during creation.
// Use functional options to customize surface behavior.
//
// Example:
//
//	// Default: internal buffer, no change listener
//	plane := picker.NewPlane(&c)
//
//	// Caller-owned buffer and a change listener
//	plane := picker.NewPlane(&c,
//	    picker.WithPixmap(pm),
//	    picker.WithOnChange(func(c picker.Color) { refresh() }),
//	)
type Option func(*options)

// options holds optional configuration for surface creation.
type options struct {
	onChange func(Color)
	pixmap   *Pixmap
}

// defaultOptions returns the default surface options.
func defaultOptions() options {
	return options{
		onChange: nil, // No listener; mutations still apply
		pixmap:   nil, // Will be created on first Render if nil
	}
}

// WithOnChange registers a callback fired once after every pointer
// event that mutates the shared Color. The callback receives a copy of
// the color after the mutation.
//
// Example:
//
//	plane := picker.NewPlane(&c, picker.WithOnChange(func(c picker.Color) {
//	    fmt.Println(c.Hex())
//	}))
func WithOnChange(fn func(Color)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithPixmap sets a caller-owned render buffer for the surface.
// The buffer is replaced by an internal one as soon as its size stops
// matching the surface extent.
//
// Example:
//
//	pm := picker.NewPixmap(256, 256)
//	plane := picker.NewPlane(&c, picker.WithPixmap(pm))
func WithPixmap(pm *Pixmap) Option {
	return func(o *options) {
		o.pixmap = pm
	}
}
