package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitalvas/mws"
)

// requestFlags are shared by the request and sign commands.
type requestFlags struct {
	path    string
	params  []string
	headers []string
	feed    string
	format  string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", "/", "API section path, e.g. /Orders/2013-09-01")
	cmd.Flags().StringArrayVarP(&f.params, "param", "p", nil, "Operation parameter as key=value (repeatable)")
	cmd.Flags().StringArrayVarP(&f.headers, "header", "H", nil, "Request header as 'Name: value' (repeatable)")
	cmd.Flags().StringVarP(&f.feed, "feed", "f", "", "File to send as the request body, - for stdin")
	cmd.Flags().StringVar(&f.format, "response-format", "", "Response format hint recorded on the request")
}

// build turns the action argument and flags into a request.
func (f *requestFlags) build(action string, stdin io.Reader) (mws.Request, error) {
	query, err := parseParams(f.params)
	if err != nil {
		return mws.Request{}, err
	}
	query["Action"] = action

	header, err := parseHeaders(f.headers)
	if err != nil {
		return mws.Request{}, err
	}

	req := mws.Request{
		Path:           f.path,
		Query:          query,
		Headers:        header,
		ResponseFormat: f.format,
	}

	switch f.feed {
	case "":
	case "-":
		req.Feed, err = io.ReadAll(stdin)
	default:
		req.Feed, err = os.ReadFile(f.feed)
	}
	if err != nil {
		return mws.Request{}, fmt.Errorf("read feed: %w", err)
	}

	return req, nil
}

func newRequestCmd(s *settings) *cobra.Command {
	var (
		flags  requestFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "request ACTION",
		Short: "Send a signed request and print the parsed response",
		Example: `  mws request GetServiceStatus --path /Sellers/2011-07-01
  mws request GetReport --path /Reports/2009-01-01 -p ReportId=898899473
  mws request SubmitFeed --path /Feeds/2009-01-01 -p FeedType=_POST_FLAT_FILE_INVLOADER_DATA_ -f inventory.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.build(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			client, err := s.newClient()
			if err != nil {
				return err
			}

			resp, err := client.Send(cmd.Context(), req)
			if err != nil {
				return err
			}

			printStatus(cmd.ErrOrStderr(), args[0], resp)

			return writeValue(cmd.OutOrStdout(), output, resp.Payload.Value())
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format: yaml or json")

	return cmd
}

// parseParams splits key=value pairs. Values may contain '='.
func parseParams(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs)+1)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", pair)
		}
		out[key] = value
	}

	return out, nil
}

// parseHeaders splits "Name: value" pairs.
func parseHeaders(pairs []string) (http.Header, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(http.Header, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q: expected 'Name: value'", pair)
		}
		out.Add(name, strings.TrimSpace(value))
	}

	return out, nil
}
