package main

const defaultConfigFile = `# irmode configuration
# NOTE: pins use BCM numbering; both buttons are wired to ground and use the
# internal pull-up.

ModePin = 23   # header pin 16
ActionPin = 24 # header pin 18

# Commands resolve to <CommandDir>/<name>.raw and are sent with ir-ctl.
CommandDir = "/var/lib/irmode/raw"
Device = "/dev/lirc0"
IRCtl = "ir-ctl"

# Button changes shorter than these are ignored.
ModeDebounceMs = 180
ActionDebounceMs = 180
# Pause after a mode switch before sampling resumes.
SettleMs = 50
PollIntervalMs = 10

# Automatic mode sends the next command every AutoIntervalMs.
AutoIntervalMs = 1000
AutoSequence = ["blue", "yellow", "white", "green"]

# Manual mode sends ManualActive while the action button is held.
ManualActive = "blue"
ManualOff = "off"

LogLevel = "info"
# LogFile = "/var/log/irmode.log"

[Scan]
	DebounceMs = 250
	ReleaseGapMs = 150
	Base = [
		1400, 1400, 700, 700, 700, 1400, 700, 2800,
		700, 2100, 1400, 700, 700, 700, 700, 1400,
		1400, 2800, 1400, 2800, 700,
	]
	Values = [700, 1400, 2100, 2800]
`
