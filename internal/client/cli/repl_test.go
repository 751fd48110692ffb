package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  [][]string
}

func (f *fakeExec) hit(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.hit("login", nil)
}
func (f *fakeExec) Signup(context.Context) error { return f.hit("signup", nil) }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.hit("logout", nil)
}
func (f *fakeExec) Dashboard(_ context.Context, a []string) error { return f.hit("dashboard", a) }
func (f *fakeExec) Analytics(_ context.Context, a []string) error { return f.hit("analytics", a) }
func (f *fakeExec) Users(_ context.Context, a []string) error     { return f.hit("users", a) }
func (f *fakeExec) SetBlocked(_ context.Context, a []string, blocked bool) error {
	if blocked {
		return f.hit("block", a)
	}
	return f.hit("unblock", a)
}
func (f *fakeExec) Deposits(_ context.Context, a []string) error   { return f.hit("deposits", a) }
func (f *fakeExec) Approve(_ context.Context, a []string) error    { return f.hit("approve", a) }
func (f *fakeExec) RandomUPI(context.Context) error                { return f.hit("randomupi", nil) }
func (f *fakeExec) Spins(_ context.Context, a []string) error      { return f.hit("spins", a) }
func (f *fakeExec) UPIs(_ context.Context, a []string) error       { return f.hit("upis", a) }
func (f *fakeExec) AddUPI(context.Context) error                   { return f.hit("addupi", nil) }
func (f *fakeExec) DeleteUPI(_ context.Context, a []string) error  { return f.hit("delupi", a) }
func (f *fakeExec) Executives(_ context.Context, a []string) error { return f.hit("execs", a) }
func (f *fakeExec) ExecStatus(_ context.Context, a []string) error { return f.hit("execstatus", a) }
func (f *fakeExec) Chats(_ context.Context, a []string) error      { return f.hit("chats", a) }
func (f *fakeExec) Chat(_ context.Context, a []string) error       { return f.hit("chat", a) }
func (f *fakeExec) Reply(_ context.Context, a []string) error      { return f.hit("reply", a) }
func (f *fakeExec) Refresh(_ context.Context, a []string) error    { return f.hit("refresh", a) }
func (f *fakeExec) Nav(context.Context) error                      { return f.hit("nav", nil) }

func runLines(exec *fakeExec, lines ...string) string {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "(test)" }, in, &out)
	return out.String()
}

func TestRunREPL_GuestCanOnlyAuthenticate(t *testing.T) {
	exec := &fakeExec{}
	out := runLines(exec, "help", "deposits", "signup", "exit")

	assert.Equal(t, []string{"signup"}, exec.calls)
	assert.Contains(t, out, guestHelp)
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Bye!")
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	exec := &fakeExec{}
	out := runLines(exec,
		"login",
		"help",
		"deposits status=pending range=today",
		"approve d1",
		"execstatus e1 approve Team Lead Read",
		"reply u1 hello   there\tfriend ",
		"block u9",
		"unblock u9",
		"foobar",
		"logout",
		"users",
		"quit",
	)

	assert.Equal(t, []string{"login", "deposits", "approve", "execstatus", "reply", "block", "unblock", "logout"}, exec.calls)
	assert.Equal(t, []string{"status=pending", "range=today"}, exec.args[1])
	assert.Equal(t, []string{"e1", "approve", "Team", "Lead", "Read"}, exec.args[3])
	assert.Equal(t, []string{"u1", "hello   there\tfriend "}, exec.args[4])
	assert.Contains(t, out, userHelp)
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Contains(t, out, "spin (test)> ")
}

func TestRunREPL_StopsAtEOF(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runLines(exec, "nav", "", "   ", "chats")

	assert.Equal(t, []string{"nav", "chats"}, exec.calls)
}

func TestAfterFields(t *testing.T) {
	tests := []struct {
		line string
		n    int
		want string
	}{
		{"reply u1 a  b\n", 2, "a  b"},
		{"  reply\tu1\t\tline one\r\n", 2, "line one"},
		{"reply u1", 2, ""},
		{"reply u1   \n", 2, ""},
		{"approve d1", 1, "d1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, afterFields(tt.line, tt.n), "%q", tt.line)
	}
}
