package domain

// OptimizationEvent is the canonical conversion signal an ad group is tuned
// for.
type OptimizationEvent string

const (
	EventOrderComplete  OptimizationEvent = "ORDER_COMPLETE"
	EventCartAdd        OptimizationEvent = "CART_ADD"
	EventCheckoutStart  OptimizationEvent = "CHECKOUT_START"
	EventPageView       OptimizationEvent = "PAGE_VIEW"
	EventFormSubmit     OptimizationEvent = "FORM_SUBMIT"
	EventButtonClick    OptimizationEvent = "BUTTON_CLICK"
	EventRegistration   OptimizationEvent = "REGISTRATION"
	EventPaymentInfoAdd OptimizationEvent = "PAYMENT_INFO_ADD"
	EventSearch         OptimizationEvent = "SEARCH"
)

// DefaultOptimizationEvent is used when a pixel is attached but no event
// can be derived from the caller or the pixel's history.
const DefaultOptimizationEvent = EventOrderComplete

// PixelEvent is one event observed on a tracking pixel.
type PixelEvent struct {
	Name   string `json:"name"`
	Volume int64  `json:"volume"`
	Active bool   `json:"active"`
}
