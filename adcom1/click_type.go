package adcom1

// AdCOM 1.0 List: Click Types
//
// Types of creative activation (click) behavior types.
type ClickType int8

const (
	ClickTypeNonClickable    ClickType = 0 // Non-Clickable
	ClickTypeUnknown         ClickType = 1 // Clickable - Details Unknown
	ClickTypeEmbeddedBrowser ClickType = 2 // Clickable - Embedded Browser/Webview
	ClickTypeNativeBrowser   ClickType = 3 // Clickable - Native Browser
)

// Ptr returns pointer to own value.
func (t ClickType) Ptr() *ClickType {
	return &t
}

// Val safely dereferences pointer, returning default value (ClickTypeNonClickable) for nil.
func (t *ClickType) Val() ClickType {
	if t == nil {
		return ClickTypeNonClickable
	}
	return *t
}
