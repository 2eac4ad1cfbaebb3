package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Amruth-empire/crop-prediction/internal/domain"
	"github.com/Amruth-empire/crop-prediction/internal/infra/logger"
	"github.com/Amruth-empire/crop-prediction/internal/usecase"
)

var errSubmissionFailed = errors.New("submission failed")

func yieldCmd() *cobra.Command {
	var from string
	var format string
	var noCheck bool
	values := make(map[domain.YieldField]*string)

	c := &cobra.Command{
		Use:   "yield",
		Short: "Predict the yield of a crop for a state, district and season",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			var form domain.YieldForm
			if from != "" {
				p, err := ws.presets.LoadPreset(from)
				if err != nil {
					return err
				}
				if p.Yield == nil {
					return fmt.Errorf("preset %q has no yield section", from)
				}
				form = *p.Yield
			}
			for _, f := range domain.YieldFields() {
				if cmd.Flags().Changed(f.Key()) {
					form.Set(f, *values[f])
				}
			}
			if s, err := domain.ParseSeason(form.Get(domain.YieldSeason)); err == nil {
				form.Set(domain.YieldSeason, string(s))
			}

			if !noCheck {
				if issues := domain.CheckYield(form); len(issues) > 0 {
					printIssues(cmd.ErrOrStderr(), issues)
					return fmt.Errorf("%d invalid field(s)", len(issues))
				}
			}

			cleanup := setupLogging(cmd, ws)
			defer cleanup()

			client, err := ws.client(logger.L())
			if err != nil {
				return err
			}

			uc := usecase.NewSubmitYield(client, usecase.WithLogger(logger.L()))
			out := uc.Execute(cmd.Context(), form)

			if err := printYield(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}
			if !out.OK() {
				return errSubmissionFailed
			}
			return nil
		},
	}

	for _, f := range domain.YieldFields() {
		v := new(string)
		values[f] = v
		c.Flags().StringVar(v, f.Key(), "", f.Label())
	}
	c.Flags().StringVar(&from, "from", "", "Preset name or YAML file with a yield section")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&noCheck, "no-check", false, "Submit without checking required fields and ranges")
	return c
}

func recommendCmd() *cobra.Command {
	var from string
	var format string
	var noCheck bool
	values := make(map[domain.RecommendationField]*string)

	c := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a crop from soil nutrients and climate readings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			ws, err := loadWorkspace(workspaceFlag(cmd))
			if err != nil {
				return err
			}

			var form domain.RecommendationForm
			if from != "" {
				p, err := ws.presets.LoadPreset(from)
				if err != nil {
					return err
				}
				if p.Recommendation == nil {
					return fmt.Errorf("preset %q has no recommendation section", from)
				}
				form = *p.Recommendation
			}
			for _, f := range domain.RecommendationFields() {
				if cmd.Flags().Changed(f.Key()) {
					form.Set(f, *values[f])
				}
			}

			if !noCheck {
				if issues := domain.CheckRecommendation(form); len(issues) > 0 {
					printIssues(cmd.ErrOrStderr(), issues)
					return fmt.Errorf("%d invalid field(s)", len(issues))
				}
			}

			cleanup := setupLogging(cmd, ws)
			defer cleanup()

			client, err := ws.client(logger.L())
			if err != nil {
				return err
			}

			uc := usecase.NewSubmitRecommendation(client, usecase.WithLogger(logger.L()))
			out := uc.Execute(cmd.Context(), form)

			if err := printRecommendation(cmd.OutOrStdout(), out, format); err != nil {
				return err
			}
			if !out.OK() {
				return errSubmissionFailed
			}
			return nil
		},
	}

	for _, f := range domain.RecommendationFields() {
		v := new(string)
		values[f] = v
		c.Flags().StringVar(v, f.Key(), "", f.Label())
	}
	c.Flags().StringVar(&from, "from", "", "Preset name or YAML file with a recommendation section")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&noCheck, "no-check", false, "Submit without checking required fields and ranges")
	return c
}

func workspaceFlag(cmd *cobra.Command) string {
	w, _ := cmd.Flags().GetString("workspace")
	return w
}
