// Package main implements forgectl, a small terminal companion for the
// SkillForge dashboard API. It logs in once, stores the bearer token
// under the user config directory, and reuses it for every call; the
// shared API client takes care of token validation and retries.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"skillforge/internal/client"
	"skillforge/internal/models"
)

const defaultAPIURL = "http://localhost:8080"

func usage() {
	fmt.Fprintf(os.Stderr, `forgectl — SkillForge dashboard from the terminal

Usage:
  forgectl [-api URL] <command> [arguments]

Commands:
  login               authenticate and store a token
  logout              revoke and discard the stored token
  courses             list the course catalog
  posts               list blog posts
  publish <file.md>   create a blog post from a Markdown file
  messages            list contact messages
  read <id>           mark a contact message as read
  home                print the homepage content document

The API base URL can also be set with the FORGE_API_URL environment
variable; the -api flag wins.
`)
}

func main() {
	apiFlag := flag.String("api", "", "API base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	baseURL := *apiFlag
	if baseURL == "" {
		baseURL = os.Getenv("FORGE_API_URL")
	}
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	tokens, err := client.DefaultFileStore()
	if err != nil {
		fatal(err)
	}
	c := client.New(baseURL, tokens)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "login":
		err = runLogin(ctx, c, tokens)
	case "logout":
		err = runLogout(ctx, c, tokens)
	case "courses":
		err = runCourses(ctx, c)
	case "posts":
		err = runPosts(ctx, c)
	case "publish":
		err = runPublish(ctx, c, args)
	case "messages":
		err = runMessages(ctx, c)
	case "read":
		err = runRead(ctx, c, args)
	case "home":
		err = runHome(ctx, c)
	default:
		fmt.Fprintf(os.Stderr, "forgectl: unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		if errors.Is(err, client.ErrAuthRequired) {
			fatal(errors.New("not logged in — run `forgectl login` first"))
		}
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "forgectl:", err)
	os.Exit(1)
}

// promptCredentials reads the email from stdin and the password without
// echo when stdin is a terminal.
func promptCredentials() (string, string, error) {
	fmt.Print("Email: ")
	var email string
	if _, err := fmt.Scanln(&email); err != nil {
		return "", "", fmt.Errorf("read email: %w", err)
	}

	fmt.Print("Password: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		return email, string(pw), nil
	}
	var password string
	if _, err := fmt.Scanln(&password); err != nil {
		return "", "", fmt.Errorf("read password: %w", err)
	}
	return email, password, nil
}

func runLogin(ctx context.Context, c *client.Client, tokens client.TokenStore) error {
	email, password, err := promptCredentials()
	if err != nil {
		return err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := c.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out, client.WithoutAuth()); err != nil {
		return err
	}
	if err := tokens.Save(out.Token); err != nil {
		return err
	}
	fmt.Println("Logged in.")
	return nil
}

func runLogout(ctx context.Context, c *client.Client, tokens client.TokenStore) error {
	// Best effort: revoke server-side, then always drop the local token.
	if err := c.Post(ctx, "/auth/logout", nil, nil); err != nil && !errors.Is(err, client.ErrAuthRequired) {
		fmt.Fprintln(os.Stderr, "forgectl: server-side revoke failed:", err)
	}
	if err := tokens.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

func runCourses(ctx context.Context, c *client.Client) error {
	var courses []models.Course
	if err := c.Get(ctx, "/api/courses", &courses, client.WithoutAuth()); err != nil {
		return err
	}
	for _, course := range courses {
		fmt.Printf("%-28s %-10s $%-8.0f %s\n", course.ID, course.Level, course.Price, course.Title)
	}
	return nil
}

func runPosts(ctx context.Context, c *client.Client) error {
	var posts []models.BlogPost
	if err := c.Get(ctx, "/api/dashboard/blog", &posts); err != nil {
		return err
	}
	for _, post := range posts {
		fmt.Printf("%-40s %-12s %s\n", post.Slug, post.Date, post.Title)
	}
	return nil
}

// runPublish creates a blog post from a Markdown file. The first "# "
// heading becomes the title; everything after it becomes the body.
func runPublish(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: forgectl publish <file.md>")
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	title, body := splitTitle(string(source))
	if title == "" {
		return errors.New("the Markdown file must start with a '# Title' heading")
	}

	post := models.BlogPost{
		Title: title,
		Body:  body,
		Date:  time.Now().Format("2006-01-02"),
	}
	var created models.BlogPost
	if err := c.Post(ctx, "/api/dashboard/blog", post, &created); err != nil {
		return err
	}
	fmt.Printf("Published %s\n", created.Slug)
	return nil
}

func runMessages(ctx context.Context, c *client.Client) error {
	var messages []models.ContactMessage
	if err := c.Get(ctx, "/api/dashboard/messages", &messages); err != nil {
		return err
	}
	for _, msg := range messages {
		marker := " "
		if !msg.Read {
			marker = "*"
		}
		fmt.Printf("%s %-36s %-28s %s\n", marker, msg.ID, msg.Email, msg.Subject)
	}
	return nil
}

func runRead(ctx context.Context, c *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: forgectl read <id>")
	}
	var msg models.ContactMessage
	if err := c.Patch(ctx, "/api/dashboard/messages/"+args[0], nil, &msg); err != nil {
		return err
	}
	fmt.Printf("Marked %s as read.\n", msg.ID)
	return nil
}

func runHome(ctx context.Context, c *client.Client) error {
	var home models.HomeContent
	if err := c.Get(ctx, "/api/home", &home, client.WithoutAuth()); err != nil {
		return err
	}
	out, err := json.MarshalIndent(home, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// splitTitle separates the leading "# Title" heading from the rest of a
// Markdown document. Blank lines before the heading are skipped; any
// other leading content means there is no title.
func splitTitle(source string) (string, string) {
	rest := source
	for {
		line, tail, found := strings.Cut(rest, "\n")
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "# "):
			return strings.TrimSpace(trimmed[2:]), tail
		case trimmed == "" && found:
			rest = tail
			continue
		}
		return "", source
	}
}
