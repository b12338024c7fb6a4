package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/pad/internal/api"
	"github.com/Paintersrp/pad/internal/notes"
)

// SyncClient is the slice of the HTTP client the UI drives. *api.Client
// satisfies it; tests substitute a fake.
type SyncClient interface {
	Register(ctx context.Context, email, password string) (api.AuthResult, error)
	Login(ctx context.Context, email, password string) (api.AuthResult, error)
	Me(ctx context.Context) (api.Profile, error)
	History(ctx context.Context) ([]notes.Note, error)
	Save(ctx context.Context, id, title, content string) (api.SaveResult, error)
	Delete(ctx context.Context, ids []string) (string, error)
	DriveLinkStart(ctx context.Context) (api.DriveLink, error)
}

type loginDoneMsg struct {
	email string
	token string
	err   error
}

type registerDoneMsg struct {
	email string
	token string
	err   error
}

// historyMsg carries the fetch generation it was issued under. Responses
// from superseded fetches are dropped on arrival.
type historyMsg struct {
	gen   uint64
	notes []notes.Note
	err   error
}

type saveDoneMsg struct {
	id      string
	created bool
	result  api.SaveResult
	err     error
}

type deleteDoneMsg struct {
	ids     []string
	message string
	err     error
}

type profileMsg struct {
	profile api.Profile
	err     error
}

type driveLinkMsg struct {
	link api.DriveLink
	err  error
}

// clearStatusMsg expires the status banner. The sequence number keeps a
// stale timer from wiping a newer message.
type clearStatusMsg struct {
	seq int
}

const requestTimeout = 15 * time.Second

func loginCmd(client SyncClient, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.Login(ctx, email, password)
		return loginDoneMsg{email: email, token: res.Token, err: err}
	}
}

func registerCmd(client SyncClient, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.Register(ctx, email, password)
		return registerDoneMsg{email: email, token: res.Token, err: err}
	}
}

func historyCmd(client SyncClient, gen uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := client.History(ctx)
		return historyMsg{gen: gen, notes: list, err: err}
	}
}

func saveCmd(client SyncClient, id, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		res, err := client.Save(ctx, id, title, content)
		return saveDoneMsg{id: res.Filename, created: id == "", result: res, err: err}
	}
}

func deleteCmd(client SyncClient, ids []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg, err := client.Delete(ctx, ids)
		return deleteDoneMsg{ids: ids, message: msg, err: err}
	}
}

func profileCmd(client SyncClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		p, err := client.Me(ctx)
		return profileMsg{profile: p, err: err}
	}
}

func driveLinkCmd(client SyncClient) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		link, err := client.DriveLinkStart(ctx)
		return driveLinkMsg{link: link, err: err}
	}
}

func clearStatusCmd(seq int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}
