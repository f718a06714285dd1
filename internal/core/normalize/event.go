package normalize

import (
	"sort"
	"strings"

	"mesa-campaigns/internal/core/domain"
)

// eventAliases maps historical and vendor event names onto the canonical
// set. Keys are folded with foldEventName.
var eventAliases = map[string]domain.OptimizationEvent{
	"completepayment":   domain.EventOrderComplete,
	"purchase":          domain.EventOrderComplete,
	"ordercomplete":     domain.EventOrderComplete,
	"ordercompleted":    domain.EventOrderComplete,
	"purchasecompleted": domain.EventOrderComplete,
	"placeanorder":      domain.EventOrderComplete,
	"shoppingorder":     domain.EventOrderComplete,

	"addtocart": domain.EventCartAdd,
	"cartadd":   domain.EventCartAdd,

	"initiatecheckout": domain.EventCheckoutStart,
	"checkoutstart":    domain.EventCheckoutStart,
	"startcheckout":    domain.EventCheckoutStart,
	"initiateorder":    domain.EventCheckoutStart,

	"viewcontent": domain.EventPageView,
	"contentview": domain.EventPageView,
	"pageview":    domain.EventPageView,
	"onwebdetail": domain.EventPageView,

	"submitform": domain.EventFormSubmit,
	"formsubmit": domain.EventFormSubmit,
	"form":       domain.EventFormSubmit,

	"clickbutton": domain.EventButtonClick,
	"buttonclick": domain.EventButtonClick,

	"completeregistration": domain.EventRegistration,
	"registration":         domain.EventRegistration,
	"signup":               domain.EventRegistration,

	"addpaymentinfo": domain.EventPaymentInfoAdd,
	"paymentinfoadd": domain.EventPaymentInfoAdd,
	"addbilling":     domain.EventPaymentInfoAdd,

	"search": domain.EventSearch,
}

func foldEventName(name string) string {
	return strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(strings.ToLower(strings.TrimSpace(name)))
}

// CanonicalEvent maps name through the alias table. Unknown names are
// returned unchanged with ok=false so new platform events keep working.
func CanonicalEvent(name string) (domain.OptimizationEvent, bool) {
	if ev, ok := eventAliases[foldEventName(name)]; ok {
		return ev, true
	}
	return domain.OptimizationEvent(strings.TrimSpace(name)), false
}

// EventSource says where a resolved optimization event came from.
type EventSource string

const (
	SourceNone     EventSource = "none"
	SourceExplicit EventSource = "explicit"
	SourcePixel    EventSource = "pixel"
	SourceDefault  EventSource = "default"
)

// EventResolution is the result of ResolveOptimizationEvent. When Send is
// false the ad group payload must not carry an optimization event.
type EventResolution struct {
	Event  domain.OptimizationEvent
	Source EventSource
	Send   bool
}

// ResolveOptimizationEvent picks the optimization event for an ad group.
// Without a pixel nothing is sent. With a pixel the explicit choice wins,
// then the strongest observed pixel event, then DefaultOptimizationEvent.
// pixelEvents is fetched by the caller; this function does no I/O.
func ResolveOptimizationEvent(explicit, pixelID string, pixelEvents []domain.PixelEvent) (EventResolution, error) {
	if strings.TrimSpace(pixelID) == "" {
		return EventResolution{Source: SourceNone}, nil
	}

	if strings.TrimSpace(explicit) != "" {
		ev, _ := CanonicalEvent(explicit)
		if foldEventName(string(ev)) == "" {
			return EventResolution{}, domain.Validation("normalize.event", "optimization event %q resolves to nothing", explicit)
		}
		return EventResolution{Event: ev, Source: SourceExplicit, Send: true}, nil
	}

	if ev, ok := strongestPixelEvent(pixelEvents); ok {
		return EventResolution{Event: ev, Source: SourcePixel, Send: true}, nil
	}
	return EventResolution{Event: domain.DefaultOptimizationEvent, Source: SourceDefault, Send: true}, nil
}

// strongestPixelEvent returns the qualifying event with the highest volume.
// Ties prefer active events, then the lexically smaller name.
func strongestPixelEvent(events []domain.PixelEvent) (domain.OptimizationEvent, bool) {
	candidates := make([]domain.PixelEvent, 0, len(events))
	for _, e := range events {
		if foldEventName(e.Name) == "" {
			continue
		}
		if e.Volume > 0 || e.Active {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Volume != b.Volume {
			return a.Volume > b.Volume
		}
		if a.Active != b.Active {
			return a.Active
		}
		return a.Name < b.Name
	})
	ev, _ := CanonicalEvent(candidates[0].Name)
	return ev, true
}
