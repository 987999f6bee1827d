package cmd

import (
	"errors"
	"fmt"

	"wishplan/internal/cli"
	"wishplan/internal/config"
	"wishplan/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagIncome    int64
	flagFixed     int64
	flagSaving    int64
	flagEmergency int64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Edit the monthly budget profile",
	Long:  "Set monthly income and fixed commitments. With no flags an interactive form opens, prefilled with the current profile and offering the recommended presets.",
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().Int64Var(&flagIncome, "income", -1, "Monthly income")
	profileCmd.Flags().Int64Var(&flagFixed, "fixed", -1, "Monthly fixed expenses")
	profileCmd.Flags().Int64Var(&flagSaving, "saving", -1, "Savings/investment amount")
	profileCmd.Flags().Int64Var(&flagEmergency, "emergency", -1, "Emergency fund amount")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	s, cfg := openStore()
	st, err := loadState(s)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("income") || cmd.Flags().Changed("fixed") ||
		cmd.Flags().Changed("saving") || cmd.Flags().Changed("emergency") {
		applyProfileFlags(&st.Profile)
	} else {
		done, err := profileForm(&st.Profile, cfg.Recommend)
		if err != nil {
			return err
		}
		if !done {
			fmt.Println(cli.RenderMuted("취소됨"))
			return nil
		}
	}

	if err := s.Save(st); err != nil {
		return err
	}
	fmt.Println(cli.RenderSuccess("프로필 저장됨"))
	return nil
}

func applyProfileFlags(p *model.Profile) {
	set := func(dst *int64, v int64) {
		if v >= 0 {
			*dst = v
		}
	}
	set(&p.Income, flagIncome)
	set(&p.FixedExpenses, flagFixed)
	set(&p.SavingInvest, flagSaving)
	set(&p.Emergency, flagEmergency)
}

// profilePreset identifies the recommendation applied after the form.
type profilePreset int

const (
	presetNone profilePreset = iota
	presetSavingFixed
	presetPercent
)

// profileForm runs the interactive profile editor. Returns false when
// the user aborted the form.
func profileForm(p *model.Profile, rec config.RecommendConfig) (bool, error) {
	income := cli.FormatAmount(p.Income)
	fixed := cli.FormatAmount(p.FixedExpenses)
	saving := cli.FormatAmount(p.SavingInvest)
	emergency := cli.FormatAmount(p.Emergency)
	preset := presetNone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("월 수입 (원)").
				Value(&income).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("월 고정 지출 (원)").
				Description("구독료, 통신비 등").
				Value(&fixed).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("저축/투자 금액 (원)").
				Value(&saving).
				Validate(cli.ValidateAmount),
			huh.NewInput().
				Title("비상금 (원)").
				Value(&emergency).
				Validate(cli.ValidateAmount),
			huh.NewSelect[profilePreset]().
				Title("추천 적용").
				Options(
					huh.NewOption("입력한 값 그대로", presetNone),
					huh.NewOption(fmt.Sprintf("추천: 저축 %s원 (군적금 예시)", cli.FormatAmount(rec.SavingPreset)), presetSavingFixed),
					huh.NewOption(fmt.Sprintf("추천 비율: %.0f%% 저축 / %.0f%% 비상", rec.SavingPct*100, rec.EmergencyPct*100), presetPercent),
				).
				Value(&preset),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("profile form: %w", err)
	}

	p.Income, _ = cli.ParseAmount(income)
	p.FixedExpenses, _ = cli.ParseAmount(fixed)
	p.SavingInvest, _ = cli.ParseAmount(saving)
	p.Emergency, _ = cli.ParseAmount(emergency)

	switch preset {
	case presetSavingFixed:
		p.SavingInvest = rec.SavingPreset
	case presetPercent:
		p.SavingInvest = int64(float64(p.Income) * rec.SavingPct)
		p.Emergency = int64(float64(p.Income) * rec.EmergencyPct)
	}

	return true, nil
}
