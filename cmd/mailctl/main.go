package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"persona-emails/api"
	"persona-emails/auth"
	"persona-emails/domain"
	"persona-emails/mailparse"

	"github.com/emersion/go-message/mail"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `usage: mailctl <command> [arguments]

commands:
  create  -from ADDR -to ADDR[,ADDR] -subject S -content C [-date D]
  import  FILE.eml
  list    PERSONA_ID
  show    EMAIL_ID
  delete  EMAIL_ID
  token   -user UID [-roles r1,r2] [-ttl 1h]

environment: MAILCTL_ADDR, MAILCTL_TOKEN, MAILCTL_TOKEN_SECRET, MAILCTL_TOKEN_ISSUER`

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Render(err.Error()))
	}
	os.Exit(code)
}

func run(args []string, out io.Writer) (int, error) {
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if !cfg.Colours {
		color.Disable()
	}
	if len(args) == 0 {
		return exitConfig, fmt.Errorf("%s", usage)
	}

	command, args := args[0], args[1:]
	if command == "token" {
		return token(cfg, args, out)
	}

	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to connect to %s: %w", cfg.Addr, err)
	}
	defer conn.Close()
	client := api.NewEmailServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	switch command {
	case "create":
		draft, err := parseCreateFlags(args)
		if err != nil {
			return exitConfig, err
		}
		return create(auth.SystemContext(ctx), client, draft, out)
	case "import":
		if len(args) != 1 {
			return exitConfig, fmt.Errorf("import expects a single file")
		}
		f, err := os.Open(args[0])
		if err != nil {
			return exitConfig, err
		}
		defer f.Close()
		draft, err := mailparse.Draft(f)
		if err != nil {
			return exitConfig, err
		}
		return create(auth.SystemContext(ctx), client, draft, out)
	case "list", "show", "delete":
		if len(args) != 1 {
			return exitConfig, fmt.Errorf("%s expects a single id", command)
		}
		ctx = auth.BearerContext(ctx, cfg.Token)
		return read(ctx, client, command, args[0], out)
	default:
		return exitConfig, fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func parseCreateFlags(args []string) (domain.Draft, error) {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	from := fs.String("from", "", "sender address list")
	to := fs.String("to", "", "recipient address list")
	subject := fs.String("subject", "", "subject")
	content := fs.String("content", "", "content")
	date := fs.String("date", time.Now().UTC().Format(time.RFC3339), "date")
	if err := fs.Parse(args); err != nil {
		return domain.Draft{}, err
	}

	fromList, err := parseAddresses(*from)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("invalid -from: %w", err)
	}
	toList, err := parseAddresses(*to)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("invalid -to: %w", err)
	}
	return domain.Draft{From: fromList, To: toList, Date: *date, Subject: *subject, Content: *content}, nil
}

// parseAddresses accepts RFC 5322 address lists such as `Bob <bob@example.com>, carol@example.com`.
func parseAddresses(list string) ([]domain.Participant, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}
	addresses, err := mail.ParseAddressList(list)
	if err != nil {
		return nil, err
	}
	return lo.Map(addresses, func(a *mail.Address, _ int) domain.Participant {
		return domain.Participant{Address: a.Address, Name: a.Name}
	}), nil
}

func create(ctx context.Context, client api.EmailServiceClient, draft domain.Draft, out io.Writer) (int, error) {
	res, err := client.Create(ctx, &api.CreateEmailRequest{
		From:    toWire(draft.From),
		To:      toWire(draft.To),
		Date:    draft.Date,
		Subject: draft.Subject,
		Content: draft.Content,
	})
	if err != nil {
		return exitRuntime, describe(err)
	}
	fmt.Fprintln(out, color.Green.Render("created ")+res.Email.ID)
	return exitOK, nil
}

func read(ctx context.Context, client api.EmailServiceClient, command, id string, out io.Writer) (int, error) {
	switch command {
	case "list":
		res, err := client.List(ctx, &api.ListEmailsRequest{PersonaID: id})
		if err != nil {
			return exitRuntime, describe(err)
		}
		writeEmails(out, res.Emails)
	case "show":
		res, err := client.Show(ctx, &api.ShowEmailRequest{ID: id})
		if err != nil {
			return exitRuntime, describe(err)
		}
		writeEmail(out, res.Email)
	case "delete":
		if _, err := client.Delete(ctx, &api.DeleteEmailRequest{ID: id}); err != nil {
			return exitRuntime, describe(err)
		}
		fmt.Fprintln(out, color.Green.Render("deleted ")+id)
	}
	return exitOK, nil
}

func token(cfg Config, args []string, out io.Writer) (int, error) {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	user := fs.String("user", "", "user id carried by the token")
	roles := fs.String("roles", "", "comma separated roles")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return exitConfig, err
	}
	if *user == "" || cfg.TokenSecret == "" {
		return exitConfig, fmt.Errorf("token needs -user and MAILCTL_TOKEN_SECRET")
	}

	roleList := lo.Compact(strings.Split(*roles, ","))
	signed, err := auth.NewJWTVerifier(cfg.TokenSecret, cfg.TokenIssuer).GenerateToken(*user, roleList, *ttl)
	if err != nil {
		return exitRuntime, err
	}
	fmt.Fprintln(out, signed)
	return exitOK, nil
}

func describe(err error) error {
	st := status.Convert(err)
	return fmt.Errorf("%s: %s", st.Code(), st.Message())
}

func toWire(participants []domain.Participant) []api.Participant {
	return lo.Map(participants, func(p domain.Participant, _ int) api.Participant {
		return api.Participant{Address: p.Address, Name: p.Name}
	})
}

func formatParticipants(participants []api.Participant) string {
	return strings.Join(lo.Map(participants, func(p api.Participant, _ int) string {
		if p.Name == "" {
			return p.Address
		}
		return fmt.Sprintf("%s <%s>", p.Name, p.Address)
	}), ", ")
}

func writeEmails(out io.Writer, emails []api.Email) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"ID", "Date", "From", "Subject", "Read"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for _, e := range emails {
		read := color.Yellow.Render("new")
		if e.Read {
			read = "yes"
		}
		table.Append([]string{e.ID, e.Date, formatParticipants(e.From), e.Subject, read})
	}
	table.Render()
}

func writeEmail(out io.Writer, e api.Email) {
	fmt.Fprintf(out, "%s %s\n", color.Cyan.Render("ID:     "), e.ID)
	fmt.Fprintf(out, "%s %s\n", color.Cyan.Render("Date:   "), e.Date)
	fmt.Fprintf(out, "%s %s\n", color.Cyan.Render("From:   "), formatParticipants(e.From))
	fmt.Fprintf(out, "%s %s\n", color.Cyan.Render("To:     "), formatParticipants(e.To))
	fmt.Fprintf(out, "%s %s\n\n%s\n", color.Cyan.Render("Subject:"), e.Subject, e.Content)
}
