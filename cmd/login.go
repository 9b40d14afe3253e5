package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"davsh/console"
	"davsh/pkg/conf"
	"davsh/pkg/escseq"
	"davsh/pkg/session"
	"davsh/pkg/slog"
	"davsh/pkg/webdav"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Root flags
var (
	username  string
	insecure  bool
	timeout   time.Duration
	verbose   string
	colorless bool
	noSession bool
)

func runConsole(cmd *cobra.Command, args []string) error {
	if colorless || !term.IsTerminal(int(os.Stdout.Fd())) {
		escseq.SetColors(false)
	}

	log := slog.NewLogger("davsh")
	if lvErr := log.SetLevel(verbose); lvErr != nil {
		return lvErr
	}
	if colorless {
		log.WithColorless()
	}

	var store *session.Store
	if !noSession {
		store = session.NewStoreAt(conf.GetDavshHome())
	}

	var serverURL string
	if len(args) == 1 {
		serverURL = strings.TrimRight(args[0], "/")
	}

	sess, fresh, lErr := resolveLogin(store, serverURL)
	if lErr != nil {
		return lErr
	}

	client := webdav.NewClient(&webdav.Config{
		BaseURL:  sess.URL + conf.DavEndpoint + sess.Username,
		Username: sess.Username,
		Creds:    sess.Creds,
		Insecure: insecure,
		Timeout:  timeout,
		Logger:   log,
	})

	// Validate the credential with a probe of the tree root before
	// entering the console
	if _, pErr := client.Propfind("/"); pErr != nil {
		var statusErr *webdav.StatusError
		if errors.As(pErr, &statusErr) && statusErr.Code == http.StatusUnauthorized {
			if store != nil && !fresh {
				_ = store.Clear()
				return fmt.Errorf("saved session rejected by server, cleared it, please log in again")
			}
			return fmt.Errorf("authentication failed for %q", sess.Username)
		}
		return fmt.Errorf("failed to reach %s: %w", sess.URL, pErr)
	}

	if fresh && store != nil {
		if offerSave() {
			if sErr := store.Save(sess); sErr != nil {
				log.Warnf("Failed to save session: %v", sErr)
			} else {
				fmt.Printf("Session saved under %s\n", conf.GetDavshHome())
			}
		}
	}

	localCwd, cwdErr := os.Getwd()
	if cwdErr != nil {
		localCwd = string(os.PathSeparator)
		log.Warnf("Unable to determine local directory: %v", cwdErr)
	}

	var onLogout func() error
	if store != nil {
		onLogout = store.Clear
	}

	davSession := console.NewSession(client, localCwd)
	return console.NewConsole(davSession, onLogout).Run()
}

// resolveLogin returns the session to use and whether it came from a
// fresh interactive login rather than the session file.
func resolveLogin(store *session.Store, serverURL string) (*session.Session, bool, error) {
	if store != nil && serverURL == "" && username == "" {
		saved, lErr := store.Load()
		if lErr != nil {
			return nil, false, lErr
		}
		if saved != nil {
			fmt.Printf("Using saved session for %q at %s\n", saved.Username, saved.URL)
			return saved, false, nil
		}
	}

	reader := bufio.NewReader(os.Stdin)

	if serverURL == "" {
		fmt.Print("Server URL: ")
		line, rErr := reader.ReadString('\n')
		if rErr != nil {
			return nil, false, fmt.Errorf("failed to read server URL: %w", rErr)
		}
		serverURL = strings.TrimRight(strings.TrimSpace(line), "/")
	}
	if serverURL == "" {
		return nil, false, fmt.Errorf("a server URL is required")
	}
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}

	user := username
	if user == "" {
		fmt.Print("Username: ")
		line, rErr := reader.ReadString('\n')
		if rErr != nil {
			return nil, false, fmt.Errorf("failed to read username: %w", rErr)
		}
		user = strings.TrimSpace(line)
	}
	if user == "" {
		return nil, false, fmt.Errorf("a username is required")
	}

	fmt.Print("Password: ")
	password, pErr := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if pErr != nil {
		return nil, false, fmt.Errorf("failed to read password: %w", pErr)
	}

	return &session.Session{
		URL:      serverURL,
		Username: user,
		Creds:    session.EncodeCreds(user, string(password)),
	}, true, nil
}

func offerSave() bool {
	fmt.Print("Save session for next time? [y/N]: ")
	reader := bufio.NewReader(os.Stdin)
	line, rErr := reader.ReadString('\n')
	if rErr != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
