// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"github.com/beevik/cmd"
	"github.com/beevik/prefixtree/v2"
)

// A command describes a host command, or a group of subcommands, and the
// handler that runs it.
type command struct {
	name        string
	brief       string
	description string
	usage       string
	handler     func(*Host, cmd.Selection) error
	subcommands []command
}

var (
	cmds      *cmd.Tree
	commands  []command
	helpTopic = prefixtree.New[*command]()
)

func init() {
	commands = []command{
		{
			name:        "help",
			brief:       "Display help for a command",
			description: "Display help for a command.",
			usage:       "help [<command>]",
			handler:     (*Host).cmdHelp,
		},
		{
			name:  "breakpoint",
			brief: "Breakpoint commands",
			subcommands: []command{
				{
					name:        "list",
					brief:       "List breakpoints",
					description: "List all current breakpoints.",
					usage:       "breakpoint list",
					handler:     (*Host).cmdBreakpointList,
				},
				{
					name:  "add",
					brief: "Add a breakpoint",
					description: "Add a breakpoint at the specified address." +
						" The breakpoint starts enabled. The run command stops" +
						" before executing the instruction at the address.",
					usage:   "breakpoint add <address>",
					handler: (*Host).cmdBreakpointAdd,
				},
				{
					name:        "remove",
					brief:       "Remove a breakpoint",
					description: "Remove a breakpoint at the specified address.",
					usage:       "breakpoint remove <address>",
					handler:     (*Host).cmdBreakpointRemove,
				},
				{
					name:        "enable",
					brief:       "Enable a breakpoint",
					description: "Enable a previously added breakpoint.",
					usage:       "breakpoint enable <address>",
					handler:     (*Host).cmdBreakpointEnable,
				},
				{
					name:  "disable",
					brief: "Disable a breakpoint",
					description: "Disable a previously added breakpoint. This" +
						" prevents the breakpoint from being hit when running the" +
						" CPU.",
					usage:   "breakpoint disable <address>",
					handler: (*Host).cmdBreakpointDisable,
				},
			},
		},
		{
			name:  "databreakpoint",
			brief: "Data breakpoint commands",
			subcommands: []command{
				{
					name:        "list",
					brief:       "List data breakpoints",
					description: "List all current data breakpoints.",
					usage:       "databreakpoint list",
					handler:     (*Host).cmdDataBreakpointList,
				},
				{
					name:  "add",
					brief: "Add a data breakpoint",
					description: "Add a new data breakpoint at the specified" +
						" memory address. When the CPU stores data at this address," +
						" the breakpoint will stop the CPU. Optionally, a byte" +
						" value may be specified, and the CPU will stop only" +
						" when this value is stored.",
					usage:   "databreakpoint add <address> [<value>]",
					handler: (*Host).cmdDataBreakpointAdd,
				},
				{
					name:  "remove",
					brief: "Remove a data breakpoint",
					description: "Remove a previously added data breakpoint at" +
						" the specified memory address.",
					usage:   "databreakpoint remove <address>",
					handler: (*Host).cmdDataBreakpointRemove,
				},
			},
		},
		{
			name:        "evaluate",
			brief:       "Evaluate an expression",
			description: "Evaluate a mathematical expression. Register names may be used as operands.",
			usage:       "evaluate <expression>",
			handler:     (*Host).cmdEvaluate,
		},
		{
			name:  "execute",
			brief: "Execute a script file",
			description: "Load a script file from disk and execute the" +
				" commands it contains.",
			usage:   "execute <filename>",
			handler: (*Host).cmdExecute,
		},
		{
			name:  "interrupt",
			brief: "Interrupt commands",
			subcommands: []command{
				{
					name:  "irq",
					brief: "Request a maskable interrupt",
					description: "Request an IRQ. It is serviced at the next step" +
						" if the InterruptDisable flag is clear, or as soon as" +
						" the flag clears.",
					usage:   "interrupt irq",
					handler: (*Host).cmdInterruptIRQ,
				},
				{
					name:        "nmi",
					brief:       "Trigger a non-maskable interrupt",
					description: "Trigger an NMI. It is serviced at the next step.",
					usage:       "interrupt nmi",
					handler:     (*Host).cmdInterruptNMI,
				},
			},
		},
		{
			name:  "load",
			brief: "Load a binary file",
			description: "Load the contents of a raw binary file into the" +
				" emulated system's memory at the specified address. The" +
				" program counter is set to the address.",
			usage:   "load <filename> <address>",
			handler: (*Host).cmdLoad,
		},
		{
			name:  "memory",
			brief: "Memory commands",
			subcommands: []command{
				{
					name:  "dump",
					brief: "Dump memory at address",
					description: "Dump the contents of memory starting from the" +
						" specified address. The number of bytes to dump may be" +
						" specified as an option. If no address is specified, the" +
						" memory dump continues from where the last dump left off.",
					usage:   "memory dump [<address>] [<bytes>]",
					handler: (*Host).cmdMemoryDump,
				},
				{
					name:  "set",
					brief: "Set memory at address",
					description: "Set the contents of memory starting from the specified" +
						" address. The values to assign should be a series of" +
						" space-separated byte values. You may use an expression for each" +
						" byte value.",
					usage:   "memory set <address> <byte> [<byte> ...]",
					handler: (*Host).cmdMemorySet,
				},
			},
		},
		{
			name:        "quit",
			brief:       "Quit the program",
			description: "Quit the program.",
			usage:       "quit",
			handler:     (*Host).cmdQuit,
		},
		{
			name:  "register",
			brief: "View or change register values",
			description: "When used without arguments, this command displays the current" +
				" contents of the CPU registers. When used with arguments, this" +
				" command changes the value of a register or one of the CPU's status" +
				" flags. Allowed register names include A, X, Y, PC and SP. Allowed status" +
				" flag names include Sign (or Negative), Zero, Carry, InterruptDisable," +
				" Decimal and Overflow (or V). Names may be abbreviated.",
			usage:   "register [<name> <value>]",
			handler: (*Host).cmdRegister,
		},
		{
			name:  "reset",
			brief: "Reset the CPU",
			description: "Reset the CPU. The program counter is loaded from" +
				" the reset vector at $FFFC, and pending interrupts and stall" +
				" cycles are discarded.",
			usage:   "reset",
			handler: (*Host).cmdReset,
		},
		{
			name:  "run",
			brief: "Run the CPU",
			description: "Run the CPU until a breakpoint is hit, the CPU jams," +
				" an instruction branches to itself, the cycle budget is spent," +
				" or the user types Ctrl-C. The budget defaults to the RunCycles" +
				" setting.",
			usage:   "run [<cycles>]",
			handler: (*Host).cmdRun,
		},
		{
			name:  "set",
			brief: "Set a configuration variable",
			description: "Set the value of a configuration variable. To see the" +
				" current values of all configuration variables, type set" +
				" without any arguments.",
			usage:   "set [<var> <value>]",
			handler: (*Host).cmdSet,
		},
		{
			name:  "stall",
			brief: "Stall the CPU",
			description: "Add cycles during which the CPU does nothing, as" +
				" when another device owns the bus.",
			usage:   "stall <cycles>",
			handler: (*Host).cmdStall,
		},
		{
			name:  "step",
			brief: "Step the CPU",
			description: "Step the CPU by a single instruction, interrupt or" +
				" stall cycle. The number of steps may be specified as an option.",
			usage:   "step [<count>]",
			handler: (*Host).cmdStep,
		},
	}

	root := cmd.NewTree(cmd.TreeDescriptor{Name: "mos6502"})
	for i := range commands {
		addCommand(root, &commands[i])
		helpTopic.Add(commands[i].name, &commands[i])
	}

	// Add command shortcuts.
	root.AddShortcut("b", "breakpoint")
	root.AddShortcut("bp", "breakpoint")
	root.AddShortcut("ba", "breakpoint add")
	root.AddShortcut("br", "breakpoint remove")
	root.AddShortcut("bl", "breakpoint list")
	root.AddShortcut("be", "breakpoint enable")
	root.AddShortcut("bd", "breakpoint disable")
	root.AddShortcut("db", "databreakpoint")
	root.AddShortcut("dbl", "databreakpoint list")
	root.AddShortcut("dba", "databreakpoint add")
	root.AddShortcut("dbr", "databreakpoint remove")
	root.AddShortcut("e", "evaluate")
	root.AddShortcut("irq", "interrupt irq")
	root.AddShortcut("nmi", "interrupt nmi")
	root.AddShortcut("m", "memory dump")
	root.AddShortcut("ms", "memory set")
	root.AddShortcut("r", "register")
	root.AddShortcut("s", "step")
	root.AddShortcut("?", "help")
	root.AddShortcut(".", "register")

	cmds = root
}

func addCommand(t *cmd.Tree, c *command) {
	if c.subcommands != nil {
		sub := t.AddSubtree(cmd.TreeDescriptor{Name: c.name, Brief: c.brief})
		for i := range c.subcommands {
			addCommand(sub, &c.subcommands[i])
		}
		return
	}

	t.AddCommand(cmd.CommandDescriptor{
		Name:        c.name,
		Brief:       c.brief,
		Description: c.description,
		Usage:       c.usage,
		Data:        c,
	})
}
