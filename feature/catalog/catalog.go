package catalog

import (
	"context"
	"errors"

	"tooltips/core/loader"
	"tooltips/core/storage"
	"tooltips/feature/area"
	"tooltips/feature/conversation"
	"tooltips/feature/furniture"
	"tooltips/feature/packet"
	"tooltips/feature/placeholder"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoDatabase is returned by furniture integrations when no placement database is configured.
	ErrNoDatabase = errors.New("no placement database configured")
	// ErrNoStorage is returned by area integrations when no object storage is configured.
	ErrNoStorage = errors.New("no object storage configured")
)

// Deps are the host resources the default adapters are built from.
// A nil DB or Storage makes the integrations needing it fail to install.
type Deps struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
	Config  loader.Config
	// PacketSink delivers packets of the packet layer. Optional.
	PacketSink packet.Sink
	// Conversations receives the quest conversation sessions. Created from Config when nil.
	Conversations *conversation.Manager
	Logger        *zap.Logger
}

// furnitureSources maps furniture components to the placement source they export.
var furnitureSources = []struct {
	component string
	source    string
}{
	{"Nexo", "nexo"},
	{"Oraxen", "oraxen"},
	{"ItemsAdder", "itemsadder"},
	{"MythicCrucible", "crucible"},
	{"CraftEngine", "craftengine"},
}

// Default returns the integrations of the host in registration order:
// packet layer, furniture providers, area provider, then the script side registrations.
func Default(deps Deps) []loader.Integration {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Conversations == nil {
		deps.Conversations = conversation.NewManager(deps.Config.ConversationIO, deps.Logger)
	}

	integrations := []loader.Integration{packetIntegration(deps)}
	for _, fs := range furnitureSources {
		integrations = append(integrations, furnitureIntegration(deps, fs.component, fs.source))
	}
	integrations = append(integrations,
		areaIntegration(deps),
		axGensIntegration(deps),
		placeholderIntegration(),
		conversationIntegration(deps.Conversations),
	)
	return integrations
}

// Install registers the default integrations on m.
func Install(m *loader.Manager, deps Deps) {
	for _, in := range Default(deps) {
		m.Register(in)
	}
}

func packetIntegration(deps Deps) loader.Integration {
	return loader.Integration{
		Name:       "packet",
		Components: []string{"packetevents", "ProtocolLib"},
		Install: func(ctx context.Context, env *loader.Env) error {
			env.Registry.SetPacketProvider(packet.NewBus(env.Component, deps.PacketSink, env.Logger))
			return nil
		},
	}
}

func furnitureIntegration(deps Deps, component, source string) loader.Integration {
	return loader.Integration{
		Components: []string{component},
		Install: func(ctx context.Context, env *loader.Env) error {
			if deps.DB == nil {
				return ErrNoDatabase
			}
			p := furniture.NewProvider(deps.DB, source, env.Logger)
			if err := p.Verify(ctx); err != nil {
				return err
			}
			env.Registry.RegisterFurnitureProvider(p)
			return nil
		},
	}
}

func areaIntegration(deps Deps) loader.Integration {
	return loader.Integration{
		Components: []string{"WorldGuard"},
		Install: func(ctx context.Context, env *loader.Env) error {
			if deps.Storage == nil {
				return ErrNoStorage
			}
			p := area.NewProvider("worldguard", deps.Storage, deps.Bucket, deps.Config.RegionsObject, env.Logger)
			if err := p.Load(ctx); err != nil {
				return err
			}
			env.Registry.RegisterAreaProvider(p)
			return nil
		},
	}
}

func axGensIntegration(deps Deps) loader.Integration {
	return loader.Integration{
		Components: []string{"AxGens"},
		Install: func(ctx context.Context, env *loader.Env) error {
			if deps.DB == nil {
				return ErrNoDatabase
			}
			env.Scripts.RegisterCondition("lookingataxgen", furniture.LookingAt(furniture.NewProvider(deps.DB, "axgens", env.Logger)))
			return nil
		},
	}
}

func placeholderIntegration() loader.Integration {
	return loader.Integration{
		Components: []string{"PlaceholderAPI"},
		Install: func(ctx context.Context, env *loader.Env) error {
			if env.Scripts.IsExpansionRegistered(placeholder.Identifier) {
				env.Logger.Info("Replacing stale placeholder expansion", zap.String("expansion", placeholder.Identifier))
				env.Scripts.UnregisterExpansion(placeholder.Identifier)
			}
			env.Scripts.RegisterExpansion(placeholder.NewExpansion(env.Registry))
			return nil
		},
	}
}

// conversationIntegration is torn down even when the version gate rejects
// BetonQuest, since sessions may still be open.
func conversationIntegration(m *conversation.Manager) loader.Integration {
	return loader.Integration{
		Components:          []string{"BetonQuest"},
		Require:             loader.MajorVersion(3),
		Install:             m.Install,
		Shutdown:            m.Shutdown,
		ShutdownWhenSkipped: true,
	}
}
