package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sys/unix"

	"kino/internal/tmdb"
)

const tmdbCheckTimeout = 10 * time.Second

// CheckTMDB verifies that TMDB is reachable and accepts the token.
// A zero timeout uses a 10-second bound; there is a single attempt.
func CheckTMDB(ctx context.Context, baseURL, token string, timeout time.Duration) Result {
	const name = "TMDB"

	if strings.TrimSpace(token) == "" {
		return Result{Name: name, Detail: "missing api token"}
	}
	if strings.TrimSpace(baseURL) == "" {
		return Result{Name: name, Detail: "missing base url"}
	}
	if timeout <= 0 {
		timeout = tmdbCheckTimeout
	}

	checkCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := tmdb.New(token, baseURL, "", tmdb.WithTimeout(timeout))
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if err := client.Authenticate(checkCtx); err != nil {
		return Result{Name: name, Detail: summarizeTMDBError(err)}
	}
	return Result{Name: name, Passed: true, Detail: "token accepted"}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// summarizeTMDBError produces a human-readable summary for TMDB check failures.
func summarizeTMDBError(err error) string {
	switch {
	case tmdb.IsStatus(err, http.StatusUnauthorized):
		return "auth failed (invalid api token)"
	case errors.Is(err, context.DeadlineExceeded):
		return "auth check timed out (TMDB unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "auth check timed out (TMDB unreachable)"
	}
	var statusErr *tmdb.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("auth check failed (%d)", statusErr.StatusCode)
	}
	return fmt.Sprintf("auth check failed (%v)", err)
}
