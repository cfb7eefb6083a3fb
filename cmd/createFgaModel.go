// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"

	"github.com/joho/godotenv"
	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"

	"github.com/barbersoft/account-service/internal/authorization"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/openfga"
	"github.com/barbersoft/account-service/internal/tracing"
)

const StoreName = "barbersoft-account-service"

// createFgaModelCmd represents the createFgaModel command
var createFgaModelCmd = &cobra.Command{
	Use:   "create-fga-model",
	Short: "Creates an openfga model",
	Long:  `Creates the openfga store and model, optionally granting super admin to the given users and recording the ids in an env file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		apiUrl, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeId, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		envFile, _ := cmd.Flags().GetString("env-file")
		admins, _ := cmd.Flags().GetStringSlice("super-admin")

		fgaClient, err := newFgaClient(apiUrl, apiToken, storeId, verbose)
		if err != nil {
			return err
		}

		modelId, finalStoreId, err := createModel(cmd.Context(), fgaClient, storeId)
		if err != nil {
			return err
		}

		if len(admins) > 0 {
			authorizer := authorization.NewAuthorizer(fgaClient, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(serviceName), logging.NewNoopLogger())
			for _, id := range admins {
				if err := authorizer.AssignSuperAdmin(cmd.Context(), id); err != nil {
					return fmt.Errorf("failed to grant super admin to %s: %w", id, err)
				}
			}
		}

		if envFile != "" {
			if err := updateEnvFile(envFile, finalStoreId, modelId); err != nil {
				return fmt.Errorf("failed to update %s: %w", envFile, err)
			}
			cmd.Printf("%s updated successfully\n", envFile)
		}

		if format == "json" {
			output := struct {
				StoreId string `json:"store_id"`
				ModelId string `json:"model_id"`
			}{
				StoreId: finalStoreId,
				ModelId: modelId,
			}
			return json.NewEncoder(cmd.OutOrStdout()).Encode(output)
		}

		cmd.Printf("Created model: %s\n", modelId)
		if storeId == "" {
			cmd.Printf("Created store: %s\n", finalStoreId)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createFgaModelCmd)

	createFgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	createFgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	createFgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to create the model in, if empty one will be created")
	createFgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	createFgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable verbose logging")
	createFgaModelCmd.Flags().String("env-file", "", "Env file receiving OPENFGA_STORE_ID and OPENFGA_AUTHORIZATION_MODEL_ID")
	createFgaModelCmd.Flags().StringSlice("super-admin", nil, "User ids granted super admin on the platform")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = createFgaModelCmd.MarkFlagRequired("fga-api-token")
}

func newFgaClient(apiUrl, apiToken, storeId string, verbose bool) (*openfga.Client, error) {
	u, err := url.Parse(apiUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	logger := logging.NewNoopLogger()

	// skip validation for openfga object
	cfg := openfga.Config{
		ApiScheme:   u.Scheme,
		ApiHost:     u.Host,
		StoreID:     storeId,
		ApiToken:    apiToken,
		AuthModelID: "",
		Debug:       verbose,
		Tracer:      tracing.NewNoopTracer(),
		Monitor:     monitoring.NewNoopMonitor(serviceName),
		Logger:      logger,
	}

	return openfga.NewClient(&cfg), nil
}

func createModel(ctx context.Context, fgaClient *openfga.Client, storeId string) (string, string, error) {
	var err error

	if storeId == "" {
		storeId, err = fgaClient.CreateStore(ctx, StoreName)
		if err != nil {
			return "", "", fmt.Errorf("failed to create store: %w", err)
		}

		if err := fgaClient.SetStoreID(ctx, storeId); err != nil {
			return "", "", fmt.Errorf("failed to select store: %w", err)
		}
	}

	authzModel := authorization.NewAuthorizationModelProvider("v0").GetModel()

	modelId, err := fgaClient.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: authzModel.TypeDefinitions,
			SchemaVersion:   authzModel.SchemaVersion,
			Conditions:      authzModel.Conditions,
		},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to write model: %w", err)
	}

	return modelId, storeId, nil
}

// updateEnvFile merges the ids into path, keeping every other variable already there
func updateEnvFile(path, storeId, modelId string) error {
	env, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		env = make(map[string]string)
	}

	env["OPENFGA_STORE_ID"] = storeId
	env["OPENFGA_AUTHORIZATION_MODEL_ID"] = modelId

	return godotenv.Write(env, path)
}
