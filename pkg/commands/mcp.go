package commands

import (
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/commands/options"
	"tableflip.dev/confusion/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	mo := &options.MCPOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes the menu, favorites and dish comments
through the Model Context Protocol.`,
		Example: `
confusion mcp --http-port 0
confusion mcp --transport stdio
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, _, err := loadApp()
			if err != nil {
				return err
			}
			r := mcp.Runner{
				App:              a,
				Name:             "confusion",
				Version:          version,
				HTTPEndpointPath: mcp.EndpointPath(mo.Path),
				HTTPServerCert:   strings.TrimSpace(mo.TLSCert),
				HTTPServerKey:    strings.TrimSpace(mo.TLSKey),
			}

			switch mcp.Transport(strings.ToLower(strings.TrimSpace(mo.Transport))) {
			case "", mcp.TransportHTTP:
				addr, err := mo.ListenAddr()
				if err != nil {
					return err
				}
				r.Transport = mcp.TransportHTTP
				r.HTTPListenAddr = addr
				r.OnHTTPListening = func(l net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", r.URL(l))
				}
			case mcp.TransportStdio:
				r.Transport = mcp.TransportStdio
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", mo.Transport)
			}

			return r.Do(cmd.Context())
		},
	}

	options.AddMCPArgs(cmd, mo)

	topLevel.AddCommand(cmd)
}
