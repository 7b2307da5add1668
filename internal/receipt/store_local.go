package receipt

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
)

// Store persists rendered receipts and retrieves their locators.
type Store interface {
	Persist(ctx context.Context, booking *domain.Booking) (string, error)
	Locate(ctx context.Context, bookingID string) (string, error)
}

// LocalStore writes receipts to a directory and returns paths the web
// layer can link to. Used in mock mode.
type LocalStore struct {
	dir string
	now func() time.Time
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir, now: time.Now}, nil
}

func (s *LocalStore) Persist(_ context.Context, booking *domain.Booking) (string, error) {
	name := artifactName(booking.BookingID, s.now())
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(Render(booking)), 0o644); err != nil {
		return "", err
	}
	return "static/uploads/" + name, nil
}

func (s *LocalStore) Locate(_ context.Context, bookingID string) (string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return "", err
	}

	prefix := artifactPrefix(bookingID)
	newest := ""
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), prefix) && e.Name() > newest {
			newest = e.Name()
		}
	}
	if newest == "" {
		return "", domain.ErrReceiptNotFound
	}
	return "static/uploads/" + newest, nil
}

var _ Store = (*LocalStore)(nil)
