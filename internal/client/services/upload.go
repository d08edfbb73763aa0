package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/client"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/client/models"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/common"
	"github.com/MayankTomar21/Python-Flask-Full-Stack-App-for-Google-Drive-Uploads/internal/logging"
)

// BatchResult summarises one RunBatch call. Started is false when the batch
// was refused before any file was touched (not authorized, nothing selected,
// or another batch running; Rejected marks the last case). Err aggregates the
// per-file failures and is nil when every file succeeded. A rejected batch
// carries common.ErrBatchInProgress.
type BatchResult struct {
	Started   bool
	Rejected  bool
	Total     int
	Succeeded int
	Failed    int
	Err       error
}

// UploadService drives sequential batch uploads and reports every transition
// through a StatusStore.
type UploadService interface {
	// Select replaces the selection and clears the previous batch status.
	Select(files []models.SelectedFile) error
	Selection() []models.SelectedFile

	// RunBatch uploads files one at a time, in order. It never returns an
	// error: every per-file failure ends up as a Failed record.
	RunBatch(ctx context.Context, files []models.SelectedFile, authorized bool) BatchResult

	// Upload runs a batch over the current selection.
	Upload(ctx context.Context, authorized bool) BatchResult

	Busy() bool
}

type uploadService struct {
	transfer client.TransferClient
	store    *StatusStore
	log      logging.Logger

	busy atomic.Bool

	mu        sync.RWMutex
	selection []models.SelectedFile
}

func NewUploadService(transfer client.TransferClient, store *StatusStore, log logging.Logger) UploadService {
	if log == nil {
		log = logging.Discard()
	}
	return &uploadService{transfer: transfer, store: store, log: log}
}

func (u *uploadService) Busy() bool {
	return u.busy.Load()
}

func (u *uploadService) Select(files []models.SelectedFile) error {
	if !u.busy.CompareAndSwap(false, true) {
		return common.ErrBatchInProgress
	}
	defer u.busy.Store(false)

	sel := make([]models.SelectedFile, len(files))
	copy(sel, files)

	u.mu.Lock()
	u.selection = sel
	u.mu.Unlock()

	u.store.Reset()
	return nil
}

func (u *uploadService) Selection() []models.SelectedFile {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]models.SelectedFile, len(u.selection))
	copy(out, u.selection)
	return out
}

func (u *uploadService) Upload(ctx context.Context, authorized bool) BatchResult {
	return u.RunBatch(ctx, u.Selection(), authorized)
}

func (u *uploadService) RunBatch(ctx context.Context, files []models.SelectedFile, authorized bool) BatchResult {
	if !u.busy.CompareAndSwap(false, true) {
		u.log.Warn(ctx, "batch refused, another batch is running")
		u.store.SetMessage(MsgBatchInProgress)
		return BatchResult{Rejected: true, Err: common.ErrBatchInProgress}
	}
	defer u.busy.Store(false)

	if !authorized {
		u.store.SetMessage(MsgAuthorizeFirst)
		return BatchResult{}
	}
	if len(files) == 0 {
		u.store.SetMessage(MsgSelectFiles)
		return BatchResult{}
	}

	log := u.log.With("batch_id", uuid.NewString())
	log.Info(ctx, "batch started", "files", len(files))

	res := BatchResult{Started: true, Total: len(files)}
	var errs *multierror.Error

	snap := NewSnapshot(files)
	u.store.setState(snap, MsgStarting)

	for _, f := range files {
		snap = snap.With(f.Name, models.InProgressRecord())
		u.store.setSnapshot(snap)
		log.Debug(ctx, "upload started", "file", f.Name, "size", f.Size)

		id, err := u.transferOne(ctx, f)
		if err == nil {
			res.Succeeded++
			snap = snap.With(f.Name, models.SucceededRecord(id))
			u.store.setState(snap, msgUploaded(f.Name))
			log.Info(ctx, "upload succeeded", "file", f.Name, "remote_id", id)
			continue
		}

		res.Failed++
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", f.Name, err))

		reason := err.Error()
		var msg string
		if errors.Is(err, client.ErrRejected) {
			if reason == "" {
				reason = ReasonUnknownError
			}
			msg = msgRejected(f.Name, reason)
		} else {
			if reason == "" {
				reason = ReasonNetworkError
			}
			msg = msgTransportError(f.Name, reason)
		}

		snap = snap.With(f.Name, models.FailedRecord(reason))
		u.store.setState(snap, msg)
		log.Warn(ctx, "upload failed", "file", f.Name, "reason", reason)
	}

	u.store.setState(snap, MsgAllProcessed)
	log.Info(ctx, "batch finished", "succeeded", res.Succeeded, "failed", res.Failed)

	res.Err = errs.ErrorOrNil()
	return res
}

// transferOne shields the batch from a panicking TransferClient.
func (u *uploadService) transferOne(ctx context.Context, f models.SelectedFile) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transfer panicked: %v", r)
		}
	}()
	return u.transfer.Upload(ctx, f)
}
