package update

// helpText is rendered with glamour into the help overlay ("?").
const helpText = `# habitd

Track daily habits from the keyboard. The selector shows the active day;
the heat-map shows one activity's full history.

| key | action |
|-----|--------|
| 1-9 | toggle the numbered activity for the active day |
| j   | previous day |
| k   | next day |
| t   | jump to today |
| n   | previous activity on the heat-map |
| m   | next activity on the heat-map |
| p   | create a new activity |
| s   | save and quit |
| q   | quit without saving |
| ?   | toggle this help |

Nothing is written to disk until you press ` + "`s`" + `.
`
