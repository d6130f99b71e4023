package entity

// Paths the route gate redirects to.
const (
	PathLogin                = "/login"
	PathIdentityVerification = "/identity-verification"
	PathSubscriptionPlans    = "/subscription-plans"
	PathPhoneVerification    = "/phone-verification"
)

// DecisionKind is the outcome class of a route gate evaluation.
type DecisionKind string

const (
	// DecisionAllow lets the protected route render.
	DecisionAllow DecisionKind = "ALLOW"
	// DecisionRedirect sends the client to Decision.Redirect.
	DecisionRedirect DecisionKind = "REDIRECT"
	// DecisionLoading is the transient outcome while authentication is not ready.
	DecisionLoading DecisionKind = "LOADING"
)

// Decision is the result of evaluating one protected route.
type Decision struct {
	Kind     DecisionKind `json:"decision"`
	Route    string       `json:"route"`
	Redirect string       `json:"redirect,omitempty"`
}

// Allow builds an ALLOW decision.
func Allow(route string) Decision {
	return Decision{Kind: DecisionAllow, Route: route}
}

// RedirectTo builds a REDIRECT decision towards target.
func RedirectTo(route, target string) Decision {
	return Decision{Kind: DecisionRedirect, Route: route, Redirect: target}
}

// Loading builds a LOADING decision.
func Loading(route string) Decision {
	return Decision{Kind: DecisionLoading, Route: route}
}

// SubscriptionStatus is the answer of the subscription collaborator.
type SubscriptionStatus struct {
	HasActiveSubscription bool   `json:"hasActiveSubscription"`
	PlanName              string `json:"planName,omitempty"`
}
