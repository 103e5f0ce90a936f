// Package interactive provides the interactive command-line interface
// for the custodian device.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/wifi-custodian/custodian-go/pkg/connection"
	"github.com/wifi-custodian/custodian-go/pkg/credential"
	"github.com/wifi-custodian/custodian-go/pkg/radio"
)

// Console drives the simulated radio and the credential store from a
// readline prompt.
type Console struct {
	rl  *readline.Instance
	out io.Writer

	sim *radio.Simulator
	mgr *connection.Manager
}

// New creates a console bound to the terminal. Call Bind before Run.
func New() (*Console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "custodian> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Console{rl: rl, out: rl.Stdout()}, nil
}

// Stdout returns a writer that coordinates with the readline input.
// Use this for log output to avoid interfering with the prompt.
func (c *Console) Stdout() io.Writer {
	return c.out
}

// Bind attaches the simulator and manager the commands operate on.
func (c *Console) Bind(sim *radio.Simulator, mgr *connection.Manager) {
	c.sim = sim
	c.mgr = mgr
}

// Run starts the command loop. It calls cancel when the user quits or
// closes the input.
func (c *Console) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.out, "Exiting...")
			cancel()
			return
		}

		if !c.Execute(line) {
			cancel()
			return
		}
	}
}

// Execute runs a single command line. It returns false when the console
// should exit.
func (c *Console) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		c.printHelp()

	case "networks", "n":
		c.cmdNetworks()

	case "add":
		c.cmdAdd(args)

	case "remove", "rm":
		c.cmdRemove(args)

	case "stored", "s":
		c.cmdStored()

	case "wipe":
		c.cmdWipe()

	case "state", "status":
		c.cmdState()

	case "timeout":
		c.cmdTimeout(args)

	case "quit", "exit", "q":
		fmt.Fprintln(c.out, "Exiting...")
		return false

	default:
		fmt.Fprintf(c.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `
Custodian Commands:
  Radio:
    networks              - List networks visible to the simulated radio
    add <name> [secret]   - Make a network visible (empty secret = open)
    remove <name>         - Hide a network

  Credential Store:
    stored                - List stored network names by slot
    wipe                  - Delete all stored credentials

  Connection:
    state                 - Show connection and provisioning state
    timeout [seconds]     - Show or set the per-attempt join timeout

  General:
    help                  - Show this help
    quit                  - Exit`)
}

func (c *Console) cmdNetworks() {
	names := c.sim.Networks()
	if len(names) == 0 {
		fmt.Fprintln(c.out, "No networks visible")
		return
	}

	connected := c.sim.ConnectedNetwork()
	fmt.Fprintf(c.out, "Visible networks (%d):\n", len(names))
	for _, name := range names {
		marker := " "
		if name == connected {
			marker = "*"
		}
		fmt.Fprintf(c.out, "  %s %s\n", marker, name)
	}
}

func (c *Console) cmdAdd(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(c.out, "Usage: add <name> [secret]")
		return
	}

	cred := credential.Credential{Name: args[0]}
	if len(args) == 2 {
		cred.Secret = args[1]
	}
	if err := cred.Validate(); err != nil {
		fmt.Fprintf(c.out, "Invalid network: %v\n", err)
		return
	}

	c.sim.AddNetwork(cred.Name, cred.Secret)
	fmt.Fprintf(c.out, "Network %s is now visible\n", cred.Name)
}

func (c *Console) cmdRemove(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: remove <name>")
		return
	}
	if !c.sim.RemoveNetwork(args[0]) {
		fmt.Fprintf(c.out, "Network not found: %s\n", args[0])
		return
	}
	fmt.Fprintf(c.out, "Network %s removed\n", args[0])
}

func (c *Console) cmdStored() {
	store := c.mgr.Store()
	creds, err := store.List()
	if err != nil {
		fmt.Fprintf(c.out, "Error: %v\n", err)
		return
	}

	fmt.Fprintf(c.out, "Stored networks: %d of %d\n", len(creds), credential.MaxSlots)
	for i, cred := range creds {
		fmt.Fprintf(c.out, "  [%2d] %s\n", i, cred.Name)
	}
}

func (c *Console) cmdWipe() {
	if err := c.mgr.Store().WipeAll(); err != nil {
		fmt.Fprintf(c.out, "Wipe failed: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, "All stored networks deleted")
}

func (c *Console) cmdState() {
	fmt.Fprintln(c.out, "Connection Status")
	fmt.Fprintln(c.out, "-------------------------------------------")
	fmt.Fprintf(c.out, "  State:          %s\n", c.mgr.State())
	fmt.Fprintf(c.out, "  Manual attempt: %s\n", c.mgr.ManualAttempt())
	fmt.Fprintf(c.out, "  Join timeout:   %s\n", c.mgr.Timeout())
	fmt.Fprintf(c.out, "  Stored:         %d of %d\n", c.mgr.Store().Count(), credential.MaxSlots)

	if name := c.sim.ConnectedNetwork(); name != "" {
		fmt.Fprintf(c.out, "  Network:        %s\n", name)
	}
	if c.sim.AccessPointActive() {
		fmt.Fprintf(c.out, "  Access point:   %s (%s)\n", c.sim.AccessPointSSID(), radio.DefaultAccessPointIP)
	}
}

func (c *Console) cmdTimeout(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(c.out, "Join timeout: %s\n", c.mgr.Timeout())
		return
	}

	seconds, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Invalid timeout: %v\n", err)
		return
	}
	c.mgr.SetTimeout(seconds)
	fmt.Fprintf(c.out, "Join timeout set to %s\n", c.mgr.Timeout())
}
