// Package tracker ties the workbook store, mutation operations and
// ranking engine together for callers such as the retention CLI. Every
// write follows the same shape: load a fresh snapshot, apply a pure
// mutation, save the changed table while preserving the rest, then
// invalidate the read cache.
package tracker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/models"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/rank"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/roster"
	"github.com/FrancAlvenn/retention-tracker/pkg/tracker/store"
)

// ErrUnknownMember indicates a point adjustment named an id with no
// matching member row.
var ErrUnknownMember = errors.New("member id not found")

// Tracker exposes the tracker operations over one workbook file.
type Tracker struct {
	path   string
	cache  *Cache
	logger *slog.Logger
}

// New creates a Tracker for the workbook at path.
func New(path string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{path: path, cache: NewCache(path), logger: logger}
}

// Leaderboard computes the ranked view from the cached snapshot.
func (t *Tracker) Leaderboard() ([]models.LeaderboardEntry, error) {
	wb, err := t.cache.Get()
	if err != nil {
		t.logger.Error("failed to load workbook", "path", t.path, "error", err)
		return nil, err
	}
	entries := rank.Compute(wb.Table(models.SheetMembers), wb.Table(models.SheetAttendance))
	t.logger.Debug("leaderboard computed", "entries", len(entries))
	return entries, nil
}

// SheetNames lists the sheets of the cached snapshot in file order.
func (t *Tracker) SheetNames() ([]string, error) {
	wb, err := t.cache.Get()
	if err != nil {
		return nil, err
	}
	return append([]string(nil), wb.Order...), nil
}

// AwardPoints adds delta to every member matching id and persists the
// members sheet. Fails with ErrUnknownMember when no row matches.
func (t *Tracker) AwardPoints(id string, delta int) error {
	t.logger.Debug("awarding points", "id", id, "delta", delta)

	wb, err := store.Load(t.path)
	if err != nil {
		return err
	}
	members, applied := roster.ApplyPointsDelta(wb.Table(models.SheetMembers), id, delta)
	if !applied {
		return fmt.Errorf("%w: %q", ErrUnknownMember, id)
	}
	return t.persist(models.SheetMembers, members, wb)
}

// AddMember appends a member row, generating an id when blank, and
// persists the members sheet. Returns the assigned id.
func (t *Tracker) AddMember(id, name string, basePoints any) (string, error) {
	t.logger.Debug("adding member", "name", name)

	wb, err := store.Load(t.path)
	if err != nil {
		return "", err
	}
	members, assigned, err := roster.InsertMember(wb.Table(models.SheetMembers), id, name, basePoints)
	if err != nil {
		return "", err
	}
	if err := t.persist(models.SheetMembers, members, wb); err != nil {
		return "", err
	}
	return assigned, nil
}

// LogAttendance records one attendance row per id for the event and
// persists the attendance sheet, creating it when absent.
func (t *Tracker) LogAttendance(event string, ids []string) error {
	t.logger.Debug("logging attendance", "event", event, "attendees", len(ids))

	wb, err := store.Load(t.path)
	if err != nil {
		return err
	}
	attendance, err := roster.InsertAttendance(wb.Table(models.SheetAttendance), event, ids)
	if err != nil {
		return err
	}
	return t.persist(models.SheetAttendance, attendance, wb)
}

// Refresh drops the cached snapshot so the next read reloads the file.
func (t *Tracker) Refresh() {
	t.cache.Invalidate()
}

func (t *Tracker) persist(sheet string, table *models.Table, preserve *models.Workbook) error {
	if err := store.Save(t.path, sheet, table, preserve); err != nil {
		t.logger.Error("failed to save workbook", "path", t.path, "sheet", sheet, "error", err)
		return err
	}
	t.cache.Invalidate()
	t.logger.Debug("workbook saved", "sheet", sheet)
	return nil
}
