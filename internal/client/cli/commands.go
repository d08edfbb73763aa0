package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/services"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
)

// getSimpleText and getSecret are indirections swapped in tests.
var (
	getSimpleText = GetSimpleText
	getSecret     = GetSecret
)

// Authorize prints the backend address that starts the consent flow. The
// gate flips once the backend redirects the browser to the callback server.
func (a *App) Authorize(ctx context.Context) error {
	printlnFn("Open this address in your browser to connect Google Drive:")
	printlnFn("  " + services.AuthorizeURL(a.config.BackendURL))
	printlnFn("Waiting for the redirect on http://" + a.config.CallbackAddr + "/")
	return nil
}

// SelectFiles replaces the selection with the images found at paths,
// prompting for paths when none are given. Paths that are not images are
// reported and left out.
func (a *App) SelectFiles(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		line, err := getSimpleText(a.reader, "Enter image paths separated by spaces", os.Stdout)
		if err != nil {
			return err
		}
		paths = strings.Fields(line)
	}

	files, loadErr := services.LoadImages(paths)
	var merr *multierror.Error
	if errors.As(loadErr, &merr) {
		for _, e := range merr.Errors {
			printlnFn("Skipped:", e)
		}
	}

	if err := a.uploads.Select(files); err != nil {
		if errors.Is(err, common.ErrBatchInProgress) {
			printlnFn("Cannot change the selection while an upload is running.")
		}
		return err
	}

	printlnFn(fmt.Sprintf("Selected %d file(s).", len(files)))
	return nil
}

func (a *App) Files(ctx context.Context) error {
	sel := a.uploads.Selection()
	if len(sel) == 0 {
		printlnFn("No files selected.")
		return nil
	}
	for i, f := range sel {
		printlnFn(fmt.Sprintf("%3d. %s (%s, %d bytes)", i+1, f.Name, f.ContentType, f.Size))
	}
	return nil
}

// Upload runs a batch over the selection. Without an established session
// nothing is sent.
func (a *App) Upload(ctx context.Context) error {
	if !a.session.Ready() {
		printlnFn("No active session. Use 'signin' to establish one before uploading.")
		return common.ErrSessionNotReady
	}

	res := a.uploads.Upload(ctx, a.gate.IsAuthorized())
	if res.Started {
		printlnFn(fmt.Sprintf("%d uploaded, %d failed.", res.Succeeded, res.Failed))
	}
	return res.Err
}

func (a *App) Status(ctx context.Context) error {
	r := newRenderer(a.out, false)
	r.printState(a.store.State())
	return nil
}

// Disconnect forgets the authorization on this side only.
func (a *App) Disconnect(ctx context.Context) error {
	a.store.SetMessage(a.gate.Disconnect())
	return nil
}

// SignIn switches the session to the identity carried by a custom token,
// read without echo when not passed as an argument.
func (a *App) SignIn(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		t, err := getSecret("Enter identity token: ", os.Stdout)
		if err != nil {
			return err
		}
		token = t
	}

	if err := a.session.SignInWithToken(ctx, token); err != nil {
		printlnFn("Sign-in failed:", err)
		return err
	}
	return a.WhoAmI(ctx)
}

func (a *App) WhoAmI(ctx context.Context) error {
	id, ok := a.session.Identity()
	if !ok {
		printlnFn("No active session.")
		return common.ErrSessionNotReady
	}
	printlnFn(fmt.Sprintf("Signed in as %s (%s)", id.UserID, id.Provider))
	return nil
}
