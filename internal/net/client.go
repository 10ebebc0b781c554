package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/coder/websocket"
)

// Client connects to a combat server and provides a terminal REPL.
type Client struct {
	conn *websocket.Conn
}

// Connect dials a server, starts a combat, and runs the REPL.
func Connect(ctx context.Context, url, loadout, enemy string, tier int) error {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.CloseNow()

	c := &Client{conn: conn}
	if err := c.write(ctx, ClientMessage{Cmd: "new_combat", Loadout: loadout, Enemy: enemy, Tier: tier}); err != nil {
		return fmt.Errorf("start combat: %w", err)
	}

	fmt.Println("Connected! Starting combat...")
	return c.RunREPL(ctx)
}

func (c *Client) write(ctx context.Context, msg ClientMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.conn.Write(ctx, websocket.MessageText, data)
}

// RunREPL alternates reading server replies and stdin commands. Every
// command gets exactly one terminal reply; enemy replay steps stream in
// between and are rendered as they arrive.
func (c *Client) RunREPL(ctx context.Context) error {
	reader := bufio.NewReader(os.Stdin)

	for {
		done, err := c.readUntilTerminal(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		msg, quit := c.readCommand(reader)
		if quit {
			return nil
		}
		if err := c.write(ctx, msg); err != nil {
			return fmt.Errorf("send command: %w", err)
		}
	}
}

// readUntilTerminal consumes server messages until a state, error, or
// game_over reply arrives. Returns done=true when the combat is over.
func (c *Client) readUntilTerminal(ctx context.Context) (done bool, err error) {
	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			return false, fmt.Errorf("read message: %w", err)
		}
		var msg ServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return false, fmt.Errorf("decode message: %w", err)
		}

		switch msg.Type {
		case "state":
			c.renderState(msg.State)
			return false, nil

		case "enemy_step":
			c.renderStep(msg.Step)

		case "error":
			if msg.Error != nil {
				fmt.Printf("  !! %s\n", msg.Error.Reason)
			}
			return false, nil

		case "game_over":
			c.renderGameOver(&msg)
			return true, nil
		}
	}
}

// readCommand parses one line of input into a protocol message. Invalid
// input reprompts; quit=true means the user asked to leave.
func (c *Client) readCommand(reader *bufio.Reader) (msg ClientMessage, quit bool) {
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return ClientMessage{}, true
		}
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		cmd, args := parts[0], parts[1:]
		switch cmd {
		case "quit", "exit":
			return ClientMessage{}, true
		case "help", "?":
			printHelp()
			continue
		case "state", "s":
			return ClientMessage{Cmd: "get_state"}, false
		case "install":
			if m, ok := withCard("install_card", args); ok {
				return m, false
			}
		case "battery":
			if m, ok := withCard("activate_battery", args); ok {
				return m, false
			}
		case "cap":
			if m, ok := withCardSlot("activate_capacitor", args); ok {
				return m, false
			}
		case "cpu":
			if m, ok := withCard("activate_cpu", args); ok {
				return m, false
			}
		case "toggle":
			if m, ok := withCard("toggle_cpu_discard", args); ok {
				return m, false
			}
		case "target":
			if m, ok := withCard("select_cpu_target_card", args); ok {
				return m, false
			}
		case "confirm":
			return ClientMessage{Cmd: "confirm_cpu_ability"}, false
		case "cancel":
			return ClientMessage{Cmd: "cancel_cpu_ability"}, false
		case "alloc":
			if len(args) == 3 {
				die, e1 := strconv.Atoi(args[0])
				card, e2 := strconv.Atoi(args[1])
				slot, e3 := strconv.Atoi(args[2])
				if e1 == nil && e2 == nil && e3 == nil {
					return ClientMessage{Cmd: "allocate_die", DieIndex: die, CardID: card, SlotID: slot}, false
				}
			}
			fmt.Println("usage: alloc <die> <card> <slot>")
			continue
		case "free":
			if m, ok := withCardSlot("unallocate_die", args); ok {
				return m, false
			}
		case "end":
			return ClientMessage{Cmd: "end_turn"}, false
		case "loot":
			if m, ok := withCard("toggle_scavenge_card", args); ok {
				return m, false
			}
		case "take":
			return ClientMessage{Cmd: "confirm_scavenge"}, false
		default:
			fmt.Printf("unknown command %q (try: help)\n", cmd)
			continue
		}
		// A recognized command with bad arguments fell through.
	}
}

func withCard(cmd string, args []string) (ClientMessage, bool) {
	if len(args) == 1 {
		if id, err := strconv.Atoi(args[0]); err == nil {
			return ClientMessage{Cmd: cmd, CardID: id}, true
		}
	}
	fmt.Println("usage: takes one card id")
	return ClientMessage{}, false
}

func withCardSlot(cmd string, args []string) (ClientMessage, bool) {
	if len(args) == 2 {
		card, e1 := strconv.Atoi(args[0])
		slot, e2 := strconv.Atoi(args[1])
		if e1 == nil && e2 == nil {
			return ClientMessage{Cmd: cmd, CardID: card, SlotID: slot}, true
		}
	}
	fmt.Println("usage: takes a card id and a slot id")
	return ClientMessage{}, false
}

func printHelp() {
	fmt.Println(`Commands:
  state                 show the current state
  install <card>        install a card from hand
  battery <card>        activate a battery (roll its dice)
  cap <card> <slot>     dynamo-boost a die stored in a capacitor slot
  cpu <card>            start a CPU ability
  toggle <card>         toggle a hand card for a CPU discard
  target <card>         pick an installed card for a CPU ability
  confirm / cancel      finish or abandon the pending CPU ability
  alloc <die> <card> <slot>   assign a pool die to a slot
  free <card> <slot>    return a die from a slot to the pool
  end                   end your turn
  loot <card> / take    pick scavenge loot / confirm picks
  quit`)
}

func (c *Client) renderStep(step *StepView) {
	if step == nil {
		return
	}
	fmt.Printf("\n-- Enemy: %s\n", step.Description)
	for _, ev := range step.Events {
		fmt.Printf("   %s\n", ev.Details)
	}
	time.Sleep(150 * time.Millisecond) // keep the replay readable on fast terminals
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}

	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════╗")
	renderSide("ENEMY", sv.Enemy)
	fmt.Println("║──────────────────────────────────────────────────────")
	renderSide("YOU", sv.You)
	fmt.Println("╚══════════════════════════════════════════════════════╝")
	fmt.Printf("Turn %d | %s\n", sv.Turn, sv.Phase)

	if a := sv.Attack; a != nil {
		fmt.Printf("Last hit: %s -> %s for %d (%d absorbed)\n", a.Weapon, a.Target, a.Dealt, a.Absorbed)
	}
	if p := sv.Pending; p != nil {
		fmt.Printf("Pending: %s (%s)\n", p.CPU, p.Ability)
	}
	if s := sv.Scavenge; s != nil {
		fmt.Printf("\nScavenge up to %d (scrap banked: %d):\n", s.Limit, s.Scrap)
		for _, cv := range s.Pool {
			mark := " "
			for _, id := range s.Selected {
				if id == cv.ID {
					mark = "*"
				}
			}
			fmt.Printf("  %s [%d] %s (%s)\n", mark, cv.ID, cv.Name, cv.Category)
		}
		return
	}

	if len(sv.You.Pool) > 0 {
		fmt.Print("Pool: ")
		for i, d := range sv.You.Pool {
			fmt.Printf("[%d] %s  ", i, formatDieView(d))
		}
		fmt.Println()
	}
	if len(sv.You.Hand) > 0 {
		fmt.Print("Hand: ")
		for _, cv := range sv.You.Hand {
			fmt.Printf("[%d] %s  ", cv.ID, cv.Name)
		}
		fmt.Println()
	}
}

func renderSide(label string, rv RobotView) {
	fmt.Printf("║  %s  HP %d/%d  Plating %d  Shield %d  Hand %d  Deck %d\n",
		label, rv.TotalHP, rv.MaxHP, rv.Plating, rv.Shield, rv.HandCount, rv.DeckCount)
	if len(rv.Statuses) > 0 {
		fmt.Print("║    Status: ")
		for name, n := range rv.Statuses {
			fmt.Printf("%s×%d ", name, n)
		}
		fmt.Println()
	}
	for _, cv := range rv.Installed {
		fmt.Printf("║    [%d] %s", cv.ID, cv.Name)
		if cv.MaxHP > 0 {
			fmt.Printf(" %d/%d", cv.HP, cv.MaxHP)
		}
		if cv.State != "intact" {
			fmt.Printf(" (%s)", cv.State)
		}
		if cv.Charges > 0 {
			fmt.Printf(" charges:%d", cv.Charges)
		}
		for _, s := range cv.Slots {
			fmt.Printf(" %s", formatSlotView(s))
		}
		if cv.LastResult != "" {
			fmt.Printf("  %s", cv.LastResult)
		}
		fmt.Println()
	}
}

func formatSlotView(s SlotView) string {
	if s.Locked {
		return "[X]"
	}
	if s.Die == nil {
		if s.Cond != "" {
			return fmt.Sprintf("[_:%s]", s.Cond)
		}
		return "[_]"
	}
	return fmt.Sprintf("[%s]", formatDieView(*s.Die))
}

func formatDieView(d DieView) string {
	if d.Hidden && d.Value == 0 {
		return fmt.Sprintf("d%d:?", d.Sides)
	}
	return fmt.Sprintf("d%d:%d", d.Sides, d.Value)
}

func (c *Client) renderGameOver(msg *ServerMessage) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════")
	fmt.Println("         COMBAT OVER")
	fmt.Println("═══════════════════════════════════")
	fmt.Println(msg.Result)
	if msg.Scrap > 0 {
		fmt.Printf("Scrap collected: %d\n", msg.Scrap)
	}
	if len(msg.Deck) > 0 {
		fmt.Println("Your deck:")
		for _, cv := range msg.Deck {
			fmt.Printf("  %s (%s)\n", cv.Name, cv.Category)
		}
	}
	fmt.Println("═══════════════════════════════════")
}
