package auditing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/auth-audit/logging"
	"github.com/blogem/auth-audit/signals"
)

// recordingEmitter captures emitted lines for assertions.
type recordingEmitter struct {
	channels   []string
	severities []logging.Severity
	messages   []string
}

func (e *recordingEmitter) Emit(channel string, severity logging.Severity, message string) {
	e.channels = append(e.channels, channel)
	e.severities = append(e.severities, severity)
	e.messages = append(e.messages, message)
}

// mockUser covers the one capability the receivers need from a user.
type mockUser struct {
	name string
}

func (u *mockUser) Username() string { return u.name }

// ReceiversTestSuite exercises the three auth event receivers end to end.
type ReceiversTestSuite struct {
	suite.Suite
	emitter   *recordingEmitter
	receivers *Receivers
}

func (suite *ReceiversTestSuite) SetupTest() {
	suite.emitter = &recordingEmitter{}
	suite.receivers = NewReceivers(suite.emitter, "")
}

func (suite *ReceiversTestSuite) loginRequest() *http.Request {
	req := httptest.NewRequest("POST", "http://testserver/login/", nil)
	req.RemoteAddr = "127.0.0.1:54321"
	return req
}

func (suite *ReceiversTestSuite) lastMessage() string {
	require.Len(suite.T(), suite.emitter.messages, 1)
	return suite.emitter.messages[0]
}

func (suite *ReceiversTestSuite) TestLoginSucceededMessage() {
	suite.receivers.LoginSucceeded(signals.LoginSucceeded{
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})

	out := suite.lastMessage()

	assert.Equal(suite.T(), Channel, suite.emitter.channels[0])
	assert.Equal(suite.T(), logging.SeverityInfo, suite.emitter.severities[0])
	assert.Contains(suite.T(), out, `"Django Login successful"`)
	assert.Contains(suite.T(), out, `"Cookie": ""`)
	assert.Contains(suite.T(), out, `"path": "/login/"`)
	assert.Contains(suite.T(), out, `"url": "http://testserver/login/"`)
	assert.Contains(suite.T(), out, `"srcip": "127.0.0.1"`)
	assert.Contains(suite.T(), out, `"username": "tester"`)
}

func (suite *ReceiversTestSuite) TestLoginSucceededExactLine() {
	suite.receivers.LoginSucceeded(signals.LoginSucceeded{
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})

	assert.Equal(suite.T(),
		`"Django Login successful" `+
			`"Cookie": "", `+
			`"path": "/login/", `+
			`"url": "http://testserver/login/", `+
			`"srcip": "127.0.0.1", `+
			`"username": "tester"`,
		suite.lastMessage())
}

func (suite *ReceiversTestSuite) TestLoginSucceededForwardedFor() {
	req := suite.loginRequest()
	req.Header.Set("X-Forwarded-For", "127.1.1.1")

	suite.receivers.LoginSucceeded(signals.LoginSucceeded{
		Request: req,
		User:    &mockUser{name: "tester"},
	})

	out := suite.lastMessage()

	assert.Contains(suite.T(), out, `"X-Forwarded-For": "127.1.1.1"`)
	assert.Contains(suite.T(), out, `"srcip": "127.1.1.1"`)
}

func (suite *ReceiversTestSuite) TestLoginFailedMessage() {
	suite.receivers.LoginFailed(signals.LoginFailed{
		Request: suite.loginRequest(),
		Credentials: []signals.Credential{
			{Name: "username", Value: "wrong"},
			{Name: "password", Value: "***********"},
		},
	})

	out := suite.lastMessage()

	assert.Equal(suite.T(), Channel, suite.emitter.channels[0])
	assert.Equal(suite.T(), logging.SeverityWarning, suite.emitter.severities[0])
	assert.Contains(suite.T(), out, `"Django Login failed"`)
	assert.Contains(suite.T(), out, `"srcip": "127.0.0.1"`)
	assert.Contains(suite.T(), out, `"username": "wrong"`)
	assert.NotContains(suite.T(), out, `"password"`)
}

func (suite *ReceiversTestSuite) TestLoginFailedDropsConfirmationFields() {
	suite.receivers.LoginFailed(signals.LoginFailed{
		Request: suite.loginRequest(),
		Credentials: []signals.Credential{
			{Name: "username", Value: "wrong"},
			{Name: "password", Value: "secret"},
			{Name: "password1", Value: "secret"},
			{Name: "password2", Value: "secret"},
		},
	})

	out := suite.lastMessage()

	assert.Contains(suite.T(), out, `"username": "wrong"`)
	assert.NotContains(suite.T(), out, `"password":`)
	assert.NotContains(suite.T(), out, `"password1":`)
	assert.NotContains(suite.T(), out, `"password2":`)
}

func (suite *ReceiversTestSuite) TestLoginFailedCustomUsernameField() {
	receivers := NewReceivers(suite.emitter, "email")

	receivers.LoginFailed(signals.LoginFailed{
		Request: suite.loginRequest(),
		Credentials: []signals.Credential{
			{Name: "email", Value: "user@example.com"},
			{Name: "password", Value: "***********"},
		},
	})

	assert.Contains(suite.T(), suite.lastMessage(), `"username": "user@example.com"`)
}

func (suite *ReceiversTestSuite) TestLoggedOutMessage() {
	suite.receivers.LoggedOut(signals.LoggedOut{
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})

	out := suite.lastMessage()

	assert.Equal(suite.T(), logging.SeverityInfo, suite.emitter.severities[0])
	assert.Contains(suite.T(), out, `"Django Logout successful"`)
	assert.Contains(suite.T(), out, `"username": "tester"`)
}

func (suite *ReceiversTestSuite) TestRegisterSubscribesAllEvents() {
	bus := signals.NewBus()
	suite.receivers.Register(bus)

	bus.PublishLoginSucceeded(signals.LoginSucceeded{
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})
	bus.PublishLoginFailed(signals.LoginFailed{
		Request: suite.loginRequest(),
		Credentials: []signals.Credential{
			{Name: "username", Value: "wrong"},
		},
	})
	bus.PublishLoggedOut(signals.LoggedOut{
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})

	require.Len(suite.T(), suite.emitter.messages, 3)
	assert.Equal(suite.T(),
		[]logging.Severity{logging.SeverityInfo, logging.SeverityWarning, logging.SeverityInfo},
		suite.emitter.severities)
}

func (suite *ReceiversTestSuite) TestSenderIsIgnored() {
	suite.receivers.LoginSucceeded(signals.LoginSucceeded{
		Sender:  struct{ anything string }{anything: "opaque"},
		Request: suite.loginRequest(),
		User:    &mockUser{name: "tester"},
	})

	assert.Contains(suite.T(), suite.lastMessage(), `"username": "tester"`)
}

func TestReceiversTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiversTestSuite))
}
