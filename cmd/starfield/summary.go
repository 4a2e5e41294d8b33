package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/session"
	"github.com/litescript/ls-starfield/internal/starview"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the derived star frame without starting the TUI",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().String("highlight", "", "highlight stars whose name contains this text")
	summaryCmd.Flags().Int("select", -1, "select a star by catalog id")
	summaryCmd.Flags().Int("limit", 20, "maximum rows to print (0 for all)")
	summaryCmd.Flags().Bool("json", false, "print the session snapshot as JSON")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(cfg, false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	sess := session.New(store, cfg.Session(), logger.Named("session"))

	if id, _ := cmd.Flags().GetInt("select"); id >= 0 {
		if sess.Mode() == starview.ModeInstanced {
			return fmt.Errorf("--select is not available in %s mode", sess.Mode())
		}
		if !sess.Select(id) {
			return fmt.Errorf("star %d not in catalog", id)
		}
	}
	if q, _ := cmd.Flags().GetString("highlight"); q != "" {
		sess.Search(q)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newSummaryJSON(sess.Snapshot()))
	}

	limit, _ := cmd.Flags().GetInt("limit")
	color := out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd()))
	writeSummary(out, sess.Snapshot(), limit, color)
	return nil
}

// summaryJSON is the JSON form of a snapshot.
type summaryJSON struct {
	Mode        string                 `json:"mode"`
	Selected    *int                   `json:"selected"`
	Highlighted []int                  `json:"highlighted"`
	Camera      cameraJSON             `json:"camera"`
	Stars       []starview.VisualState `json:"stars"`
	Events      []session.Event        `json:"events"`
}

type cameraJSON struct {
	State   string `json:"state"`
	Seq     uint64 `json:"seq,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Command string `json:"command,omitempty"`
}

func newSummaryJSON(snap session.Snapshot) summaryJSON {
	out := summaryJSON{
		Mode:        snap.Mode.String(),
		Selected:    snap.Selected,
		Highlighted: snap.Highlighted,
		Camera:      cameraJSON{State: snap.State.String()},
		Stars:       snap.Visuals,
		Events:      snap.Events,
	}
	if snap.Pending != nil {
		out.Camera.Seq = snap.Pending.Seq
		out.Camera.Kind = string(snap.Pending.Command.Kind())
		out.Camera.Command = snap.Pending.Command.String()
	}
	return out
}

// writeSummary prints a table of the visible stars, emphasized tiers first.
func writeSummary(w io.Writer, snap session.Snapshot, limit int, color bool) {
	camera := snap.State.String()
	if snap.Pending != nil {
		camera = fmt.Sprintf("%s #%d %s", camera, snap.Pending.Seq, snap.Pending.Command)
	}

	counts := starview.Count(snap.Visuals)
	fmt.Fprintf(w, "Starfield (%s mode)\n", snap.Mode)
	fmt.Fprintf(w, "Camera: %s\n", camera)
	fmt.Fprintln(w, strings.Repeat("─", 72))

	if len(snap.Visuals) == 0 {
		fmt.Fprintln(w, "No stars in view")
		return
	}

	fmt.Fprintf(w, "%-8s %-18s %9s %7s %-12s %-5s\n", "ID", "Name", "Dist(pc)", "Mag", "Tier", "Label")
	fmt.Fprintln(w, strings.Repeat("─", 72))

	rows := orderForSummary(snap.Visuals)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, v := range rows {
		tier := fmt.Sprintf("%-12s", v.Tier)
		if color && v.Tier != starview.TierRegular {
			tier = lipgloss.NewStyle().Foreground(lipgloss.Color(v.Color)).Bold(true).Render(tier)
		}
		label := ""
		if v.ShowLabel {
			label = "yes"
		}
		fmt.Fprintf(w, "%-8s %-18s %9.2f %7.2f %s %-5s\n",
			v.ID,
			truncateStr(v.Name, 18),
			v.Position.Norm(),
			v.Mag,
			tier,
			label,
		)
	}

	fmt.Fprintf(w, "\nTotal: %d stars (%d highlighted, %d selected)\n",
		counts.Total, counts.Highlighted, counts.Selected)
}

// orderForSummary moves the selected and highlighted stars to the front,
// keeping render order otherwise.
func orderForSummary(visuals []starview.VisualState) []starview.VisualState {
	rows := make([]starview.VisualState, 0, len(visuals))
	for _, tier := range []starview.Tier{starview.TierSelected, starview.TierHighlighted, starview.TierRegular} {
		for _, v := range visuals {
			if v.Tier == tier {
				rows = append(rows, v)
			}
		}
	}
	return rows
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
