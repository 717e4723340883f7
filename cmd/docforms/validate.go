package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/document"
	"github.com/sreeramsuresh/steelapp-fe-sub017/internal/domain/formconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate <tipo> [archivo.json]",
	Short: "Valida un documento y emite el resultado en JSON",
	Long: `Lee un documento en formato externo (archivo o stdin), lo pasa por el
validador por capas del tipo indicado y emite el resultado en JSON.
Termina con código 1 si el documento tiene errores.`,
	Example: `  docforms validate invoice factura.json
  cat cotizacion.json | docforms validate quotation`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().Bool("approval", false, "Valida contra los requisitos de aprobación")
}

func runValidate(cmd *cobra.Command, args []string) error {
	doc, ad, err := loadDocument(args)
	if err != nil {
		return err
	}
	cfg, err := formconfig.ForType(ad.DocumentType())
	if err != nil {
		return err
	}
	doc = document.Apply(doc, document.Calculate(doc, document.DefaultOptions()))

	var res document.ValidationResult
	if approval, _ := cmd.Flags().GetBool("approval"); approval {
		res = document.CanApprove(doc, cfg)
	} else {
		res = document.Validate(doc, cfg, cfg.Overrides.CustomValidators)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if !res.IsValid {
		return fmt.Errorf("documento con %d errores de validación", len(res.Errors))
	}
	return nil
}
