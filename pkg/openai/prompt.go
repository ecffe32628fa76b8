package openai

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TimelogParsingPrompt instructs the model to emit a JSON array of time
// entries. The normalizer enforces the same project/description rules
// defensively, since the model may ignore them.
const TimelogParsingPrompt = `You are an AI assistant that parses free-form time logs into structured data for a time tracking system.

Your task is to parse the given text and extract time entries with the following information:
- date: Date in YYYY-MM-DD format
- start_time: Start time in HH:MM format (24-hour), or null
- end_time: End time in HH:MM format (24-hour), or null
- duration: Duration in minutes (integer)
- description: Brief description of the work done
- project: Project name (if identifiable)
- client: Client name (if identifiable)
- billable: Boolean - assume true unless explicitly stated otherwise
- rate: Hourly rate in USD (default to 90 if not specified)

IMPORTANT PROJECT/DESCRIPTION PARSING RULES:
1. If a line contains "ProjectName: Description" format, extract ProjectName as the project and Description as the description
2. If a line starts with a single word followed by a colon, that word is likely the project name
3. If the description is a single word or short phrase without context, it might be a project name - check if it could be a project under the specified client
4. Look for project indicators in the broader context (e.g., "Customer is X" suggests subsequent items relate to that customer)
5. Common project patterns: single words like "Shed", "Website", "App", "Marketing" are often project names

CLIENT/CUSTOMER DETECTION:
- Look for "Customer is [Name]" or "Client: [Name]" patterns
- If specified once, apply to all subsequent entries until a new client is mentioned
- Common client indicators: "for [ClientName]", "at [ClientName]", "with [ClientName]"

RATE DETECTION:
- Look for "Hourly rate $X" or "$X/hr" patterns
- If specified once, apply to all subsequent entries
- Default to $90/hr if not specified

TIME PARSING:
1. If no date is specified, assume today's date (use the current date provided in the user message)
2. When parsing dates like "24 July" or "July 24", use the current year from the context
3. If only duration is given (no start/end times), set start_time to null and end_time to null
4. If start time is given but no end time, calculate end time using duration
5. Always mark entries as billable unless explicitly stated otherwise
6. IMPORTANT: Always use the current year unless a different year is explicitly specified

Example input formats to handle:
- "9:00 - 10:00 - Shed" -> project: "Shed", description: "Work on Shed"
- "9:00 - 10:00 - Shed: Foundation work" -> project: "Shed", description: "Foundation work"
- "Website development" -> project: "Website", description: "Website development"

Return ONLY valid JSON array of objects, no additional text.

Example output format:
[
  {
    "date": "2025-07-24",
    "start_time": "09:00",
    "end_time": "10:30",
    "duration": 90,
    "description": "Foundation work",
    "project": "Shed",
    "client": "Wynnes",
    "billable": true,
    "rate": 90
  }
]

Parse the following time log:`

// BuildTimelogUserText prefixes the raw time log with the current date so
// the model can resolve relative and year-less dates.
func BuildTimelogUserText(now time.Time, timelog string) string {
	return fmt.Sprintf("Current date: %s (Year: %d)\n\n%s",
		now.Format("2006-01-02"), now.Year(), timelog)
}

// BuildChatSystemPrompt builds the system prompt for the general chat
// assistant, embedding per-user context as bullet lines.
func BuildChatSystemPrompt(context map[string]string) string {
	var sb strings.Builder
	sb.WriteString("You are an AI assistant integrated into a time tracking application. ")
	sb.WriteString("You help users with time tracking tasks, answer questions about their logged time, ")
	sb.WriteString("and assist with various time management activities.\n\n")

	if len(context) > 0 {
		sb.WriteString("Context about the current user:\n")
		keys := make([]string, 0, len(context))
		for k := range context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", k, context[k]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Be helpful, concise, and focused on time tracking and project management tasks.")
	return sb.String()
}
