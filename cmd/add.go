package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wishplan/internal/cli"
	"wishplan/internal/config"
	"wishplan/internal/planner"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagAddName     string
	flagAddTarget   int64
	flagAddMonths   int64
	flagAddPriority int
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a wishlist item",
	Long:  "Add a savings goal with a target amount, a deadline in months, and a priority (1 highest, 5 lowest). With no flags an interactive form opens.",
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Item name")
	addCmd.Flags().Int64Var(&flagAddTarget, "target", 0, "Target amount")
	addCmd.Flags().Int64Var(&flagAddMonths, "months", 0, "Months to save over")
	addCmd.Flags().IntVar(&flagAddPriority, "priority", 0, "Priority 1-5 (1 highest)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	name := flagAddName
	target := flagAddTarget
	months := flagAddMonths
	priority := flagAddPriority

	if !cmd.Flags().Changed("name") {
		var done bool
		name, target, months, priority, done, err = addItemForm(cfg.Planner)
		if err != nil {
			return err
		}
		if !done {
			fmt.Println(cli.RenderMuted("취소됨"))
			return nil
		}
	} else {
		if strings.TrimSpace(name) == "" {
			return errors.New("item name must not be empty")
		}
		if target < 0 {
			return errors.New("target must not be negative")
		}
		if months < 1 {
			months = cfg.Planner.DefaultMonths
		}
		if priority < 1 || priority > 5 {
			priority = cfg.Planner.DefaultPriority
		}
	}

	it := planner.AddItem(st, name, target, months, priority, time.Now())
	if err := s.Save(st); err != nil {
		return err
	}

	fmt.Println(cli.RenderSuccess(fmt.Sprintf("'%s' 추가됨 (id %d)", it.Name, it.ID)))
	return nil
}

// addItemForm collects a new item interactively, prefilled with the
// configured defaults. Returns done=false when the user aborted.
func addItemForm(def config.PlannerConfig) (name string, target, months int64, priority int, done bool, err error) {
	targetStr := cli.FormatAmount(def.DefaultTarget)
	monthsStr := fmt.Sprintf("%d", def.DefaultMonths)
	priority = def.DefaultPriority

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("물건 이름").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("이름을 입력하세요")
					}
					return nil
				}),
			huh.NewInput().
				Title("목표 금액 (원)").
				Value(&targetStr).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("목표 기간 (개월)").
				Value(&monthsStr).
				Validate(func(s string) error {
					v, perr := cli.ParseAmount(s)
					if perr != nil || v < 1 {
						return errors.New("1 이상의 정수를 입력하세요")
					}
					return nil
				}),
			huh.NewSelect[int]().
				Title("우선순위 (1:높음)").
				Options(
					huh.NewOption("1 (가장 높음)", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4", 4),
					huh.NewOption("5 (가장 낮음)", 5),
				).
				Value(&priority),
		),
	)

	if err = form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", 0, 0, 0, false, nil
		}
		return "", 0, 0, 0, false, fmt.Errorf("add form: %w", err)
	}

	name = strings.TrimSpace(name)
	target, _ = cli.ParseAmount(targetStr)
	months, _ = cli.ParseAmount(monthsStr)
	return name, target, months, priority, true, nil
}
