//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-verdict/internal/app"
)

func InitializeApp(ctx context.Context, v *viper.Viper) (*app.App, error) {
	wire.Build(AppSet)
	return &app.App{}, nil
}
