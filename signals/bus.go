package signals

// Bus fans authentication events out to subscribed receivers, one
// subscription list per event variant. Publishing runs the receivers
// synchronously on the caller's goroutine.
//
// Subscribe during startup, before the server accepts traffic; publishing is
// then safe from concurrent requests since the subscription lists are only
// read.
type Bus struct {
	loginSucceeded []func(LoginSucceeded)
	loginFailed    []func(LoginFailed)
	loggedOut      []func(LoggedOut)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnLoginSucceeded subscribes fn to successful login events.
func (b *Bus) OnLoginSucceeded(fn func(LoginSucceeded)) {
	b.loginSucceeded = append(b.loginSucceeded, fn)
}

// OnLoginFailed subscribes fn to failed login events.
func (b *Bus) OnLoginFailed(fn func(LoginFailed)) {
	b.loginFailed = append(b.loginFailed, fn)
}

// OnLoggedOut subscribes fn to logout events.
func (b *Bus) OnLoggedOut(fn func(LoggedOut)) {
	b.loggedOut = append(b.loggedOut, fn)
}

// PublishLoginSucceeded delivers e to every login-success subscriber.
func (b *Bus) PublishLoginSucceeded(e LoginSucceeded) {
	for _, fn := range b.loginSucceeded {
		fn(e)
	}
}

// PublishLoginFailed delivers e to every login-failure subscriber.
func (b *Bus) PublishLoginFailed(e LoginFailed) {
	for _, fn := range b.loginFailed {
		fn(e)
	}
}

// PublishLoggedOut delivers e to every logout subscriber.
func (b *Bus) PublishLoggedOut(e LoggedOut) {
	for _, fn := range b.loggedOut {
		fn(e)
	}
}
