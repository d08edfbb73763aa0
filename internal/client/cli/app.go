package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/callback"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/client"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/config"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/repositories/identity"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/services"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/filex"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	store    *services.StatusStore
	gate     *services.AuthGate
	session  services.SessionService
	uploads  services.UploadService
	callback *callback.Server
	out      io.Writer
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.New(os.Stderr, c.LogLevel, c.LogFormat)

	dbPath, err := filex.EnsureFileDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, dbPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", dbPath, "error", err)
		return nil, err
	}

	session := services.NewSessionService(
		identity.NewSQLiteRepository(db),
		services.SessionOptions{AppID: c.AppID, Token: c.IdentityToken, Secret: []byte(c.IdentitySecret)},
		log.With("component", "session"),
	)

	owner := func() string {
		if id, ok := session.Identity(); ok {
			return id.UserID
		}
		return ""
	}

	transfer, err := client.NewTransferClient(ctx, c, owner)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store := services.NewStatusStore()
	gate := services.NewAuthGate()

	return &App{
		config:   c,
		log:      log,
		db:       db,
		store:    store,
		gate:     gate,
		session:  session,
		uploads:  services.NewUploadService(transfer, store, log.With("component", "upload")),
		callback: callback.New(c.CallbackAddr, gate, store, log.With("component", "callback")),
		out:      os.Stdout,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run establishes the session, then serves the authorization callback and
// the REPL side by side until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.db.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	r := newRenderer(a.out, term.IsTerminal(int(os.Stdout.Fd())))
	unsubscribe := a.store.Subscribe(r.render)
	defer unsubscribe()

	printlnFn("Welcome to the Drive image uploader (type 'help' for commands)")
	a.startSession(ctx)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.callback.Run(gctx); err != nil {
			a.log.Error(gctx, "authorization callback stopped", "error", err)
			printlnFn("Authorization callback unavailable:", err)
		}
		return nil
	})

	// The REPL blocks on stdin, so it is not part of the group: a signal
	// must end Run without waiting for another line of input.
	done := make(chan struct{})
	go func() {
		defer close(done)
		runREPL(gctx, a, a.getStatus, bufio.NewScanner(a.reader))
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
	cancel()

	return g.Wait()
}

func (a *App) startSession(ctx context.Context) {
	if err := a.session.Start(ctx); err != nil {
		a.log.Error(ctx, "session initialization failed", "error", err)
		printlnFn("Session initialization failed:", err)
		return
	}
	if id, ok := a.session.Identity(); ok {
		printlnFn(fmt.Sprintf("Signed in as %s (%s)", id.UserID, id.Provider))
	}
}

func (a *App) getStatus() string {
	s := "not authorized"
	if a.gate.IsAuthorized() {
		s = "authorized"
	}
	if !a.session.Ready() {
		s += ", no session"
	}
	if a.uploads.Busy() {
		s += ", uploading"
	}
	return fmt.Sprintf("(%s)", s)
}
