package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	archivev1 "github.com/chatvault/chatvault/gen/archive/v1"
	"github.com/chatvault/chatvault/internal/session"
	"github.com/chatvault/chatvault/internal/tui/client"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func main() {
	sessionFlag := flag.String("session", "", "session name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	outFlag := flag.String("out", "", "export output directory (export command)")
	flag.Parse()

	sessionName := session.Resolve(*sessionFlag)
	if err := session.ValidateName(sessionName); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	socketPath := session.SocketPath(sessionName)
	c, err := client.New(socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for session %q: %v\n", sessionName, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch args[0] {
	case "status":
		cmdStatus(ctx, c, *jsonFlag)
	case "count":
		cmdCount(ctx, c, *jsonFlag)
	case "sample":
		cmdSample(ctx, c, *jsonFlag)
	case "export":
		cmdExport(ctx, c, *outFlag, *jsonFlag)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: cvctl [--session <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status           Show daemon status and record count")
	fmt.Fprintln(os.Stderr, "  count            Show total stored records")
	fmt.Fprintln(os.Stderr, "  sample           Show the first valid archived record")
	fmt.Fprintln(os.Stderr, "  export [--out d] Export the archive to CSV")
}

func cmdStatus(ctx context.Context, c *client.Client, asJSON bool) {
	resp, err := c.Archive.Status(ctx, &archivev1.StatusRequest{})
	if err != nil {
		fail(err)
	}
	if asJSON {
		printJSON(map[string]any{
			"session": resp.GetSession(),
			"state":   resp.GetState(),
			"records": resp.GetTotalRecords(),
		})
		return
	}
	fmt.Printf("session: %s\nstate:   %s\nrecords: %d\n",
		resp.GetSession(), resp.GetState(), resp.GetTotalRecords())
}

func cmdCount(ctx context.Context, c *client.Client, asJSON bool) {
	resp, err := c.Archive.Count(ctx, &archivev1.CountRequest{})
	if err != nil {
		fail(err)
	}
	if asJSON {
		printJSON(map[string]any{"total": resp.GetTotal()})
		return
	}
	fmt.Println(resp.GetTotal())
}

func cmdSample(ctx context.Context, c *client.Client, asJSON bool) {
	resp, err := c.Archive.Sample(ctx, &archivev1.SampleRequest{})
	if err != nil {
		fail(err)
	}
	if !resp.GetFound() {
		fmt.Fprintln(os.Stderr, "archive is empty")
		os.Exit(1)
	}
	rec := resp.GetRecord()
	if asJSON {
		printJSON(map[string]any{
			"id":         rec.GetId(),
			"groupId":    rec.GetGroupId(),
			"text":       rec.GetText(),
			"createdAt":  rec.GetCreatedAt(),
			"senderId":   rec.GetSenderId(),
			"senderName": rec.GetSenderName(),
		})
		return
	}
	fmt.Printf("%s (%s): %s\n", rec.GetSenderName(), rec.GetId(), rec.GetText())
}

func cmdExport(ctx context.Context, c *client.Client, outDir string, asJSON bool) {
	resp, err := c.Archive.Export(ctx, &archivev1.ExportRequest{OutputDir: outDir})
	if grpcstatus.Code(err) == codes.FailedPrecondition {
		fmt.Fprintln(os.Stderr, "nothing to export")
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	if asJSON {
		printJSON(map[string]any{"path": resp.GetPath(), "records": resp.GetRecords()})
		return
	}
	fmt.Printf("exported %d records to %s\n", resp.GetRecords(), resp.GetPath())
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
