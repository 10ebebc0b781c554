package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/eternaldensity/scrapduel/internal/game"
	scrapnet "github.com/eternaldensity/scrapduel/internal/net"
)

// activeSession is the singleton combat session (one per stdio process).
var activeSession *CombatSession

// loadoutsFile is the path to the loadouts YAML file, set by main.
var loadoutsFile string

// SetLoadoutsFile sets the path to the loadouts YAML file.
func SetLoadoutsFile(path string) {
	loadoutsFile = path
}

// RegisterTools adds all combat tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startCombatTool(), handleStartCombat)
	s.AddTool(getStateTool(), handleGetState)
	s.AddTool(cardTool("install_card",
		"Install a component card from your hand onto your robot. Costs nothing; installed cards accept dice."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.InstallCard(game.SidePlayer, a.cardID)
		}))
	s.AddTool(cardTool("activate_battery",
		"Activate an installed battery, rolling its dice into your pool. Once per battery per turn, limited charges per fight."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ActivateBattery(game.SidePlayer, a.cardID)
		}))
	s.AddTool(cardSlotTool("activate_capacitor",
		"Boost the die stored in a capacitor slot with the capacitor's dynamo, once per turn. Use unallocate_die to recall it to your pool."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ActivateCapacitor(game.SidePlayer, a.cardID, a.slotID)
		}))
	s.AddTool(cardTool("activate_cpu",
		"Start an installed CPU's ability. Follow with toggle_cpu_discard or select_cpu_target, then confirm_cpu_ability."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ActivateCPU(game.SidePlayer, a.cardID)
		}))
	s.AddTool(cardTool("toggle_cpu_discard",
		"Toggle a hand card in the pending CPU ability's discard selection."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ToggleCPUDiscard(game.SidePlayer, a.cardID)
		}))
	s.AddTool(cardTool("select_cpu_target",
		"Pick an installed card as the pending CPU ability's target."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.SelectCPUTarget(game.SidePlayer, a.cardID)
		}))
	s.AddTool(bareTool("confirm_cpu_ability",
		"Resolve the pending CPU ability with its current selection."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ConfirmCPUAbility(game.SidePlayer)
		}))
	s.AddTool(bareTool("cancel_cpu_ability",
		"Abandon the pending CPU ability. The activation is not spent."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.CancelCPUAbility(game.SidePlayer)
		}))
	s.AddTool(allocateDieTool(),
		commandHandler(func(c *game.Combat, a args) error {
			return c.AllocateDie(game.SidePlayer, a.dieIndex, a.cardID, a.slotID)
		}))
	s.AddTool(cardSlotTool("unallocate_die",
		"Return a die from a slot on one of your cards to your pool, unrolled."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.UnallocateDie(game.SidePlayer, a.cardID, a.slotID)
		}))
	s.AddTool(endTurnTool(), handleEndTurn)
	s.AddTool(cardTool("toggle_scavenge_card",
		"Toggle a card in the post-victory scavenge pool. Only valid while scavenging."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ToggleScavengeCard(a.cardID)
		}))
	s.AddTool(bareTool("confirm_scavenge",
		"Take the selected scavenge picks into your deck and bank the scrap, ending the combat."),
		commandHandler(func(c *game.Combat, a args) error {
			return c.ConfirmScavenge()
		}))
}

// --- Tool definitions ---

func startCombatTool() mcp.Tool {
	return mcp.NewTool("start_combat",
		mcp.WithDescription("Start a new combat against an enemy robot. Returns the initial state: "+
			"your chassis is installed, your opening hand is drawn, and it is your power-up phase."),
		mcp.WithString("loadout", mcp.Description("Your loadout name from the loadouts file (default: Wanderer)")),
		mcp.WithString("enemy", mcp.Description("Enemy loadout name (default: second loadout in the file)")),
		mcp.WithNumber("tier", mcp.Description("Enemy difficulty tier; each tier adds the loadout's bonus cards once")),
		mcp.WithNumber("seed", mcp.Description("RNG seed, 0 for random")),
	)
}

func getStateTool() mcp.Tool {
	return mcp.NewTool("get_state",
		mcp.WithDescription("Get the current combat state without acting. Read-only."),
	)
}

func endTurnTool() mcp.Tool {
	return mcp.NewTool("end_turn",
		mcp.WithDescription("End your power-up phase. AutoFire weapons resolve, statuses tick, the enemy takes "+
			"its whole turn, and the response includes the enemy turn replay plus your new state."),
	)
}

func allocateDieTool() mcp.Tool {
	return mcp.NewTool("allocate_die",
		mcp.WithDescription("Assign a die from your pool to a slot on one of your installed cards. "+
			"The card resolves as soon as all its slots are filled."),
		mcp.WithNumber("die_index", mcp.Required(), mcp.Description("0-based index into your dice pool")),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance id of the installed card")),
		mcp.WithNumber("slot_id", mcp.Required(), mcp.Description("0-based slot id on the card")),
	)
}

func bareTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name, mcp.WithDescription(desc))
}

func cardTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance id of the card")),
	)
}

func cardSlotTool(name, desc string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(desc),
		mcp.WithNumber("card_id", mcp.Required(), mcp.Description("Instance id of the card")),
		mcp.WithNumber("slot_id", mcp.Required(), mcp.Description("0-based slot id on the card")),
	)
}

// --- Tool handlers ---

type args struct {
	cardID   int
	slotID   int
	dieIndex int
}

// commandHandler wraps an engine command as an MCP tool handler. A rule
// error comes back in the response envelope with the unchanged state so the
// caller can correct course; only session-level problems use the error
// result.
func commandHandler(cmd func(c *game.Combat, a args) error) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sess := activeSession
		if sess == nil {
			return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
		}

		sess.mu.Lock()
		defer sess.mu.Unlock()

		a := args{
			cardID:   request.GetInt("card_id", 0),
			slotID:   request.GetInt("slot_id", 0),
			dieIndex: request.GetInt("die_index", 0),
		}
		err := cmd(sess.combat, a)

		resp := sess.respond(nil)
		if err != nil {
			resp.RuleError = scrapnet.BuildErrorView(err)
		}
		if resp.GameOver {
			activeSession = nil
		}
		return mcp.NewToolResultText(respondJSON(resp)), nil
	}
}

func handleStartCombat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A combat is already running. Only one combat at a time is supported."), nil
	}

	loadout := request.GetString("loadout", "Wanderer")
	enemy := request.GetString("enemy", "")
	tier := request.GetInt("tier", 0)
	seed := request.GetInt("seed", 0)

	sess, err := NewCombatSession(loadoutsFile, loadout, enemy, tier, int64(seed))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start combat: %v", err), nil
	}
	activeSession = sess

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return mcp.NewToolResultText(respondJSON(sess.respond(nil))), nil
}

func handleGetState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return mcp.NewToolResultText(respondJSON(sess.respond(nil))), nil
}

func handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := activeSession
	if sess == nil {
		return mcp.NewToolResultError("No combat is running. Use start_combat first."), nil
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	steps, err := sess.combat.EndTurn()
	resp := sess.respond(steps)
	if err != nil {
		resp.RuleError = scrapnet.BuildErrorView(err)
	}
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
