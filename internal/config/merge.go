package config

import (
	"dario.cat/mergo"

	"transkeys/internal/errors"
	"transkeys/internal/workspace"
)

// Merge layers inline overrides over the workspace config over built-in
// defaults. Precedence is inline > workspace > defaults, applied shallowly
// per top-level field: a layer that sets a field fully replaces the value
// from the layers beneath it. Scope mappings are taken wholesale from the
// highest layer that sets them; entries are never combined across layers.
//
// The workspace contributes langs, its root translations path, and the
// keysManager block's defaultValue/input/output. No validation happens
// here.
func Merge(inline Raw, ws *workspace.Config) (Raw, error) {
	layers := []Raw{inline}
	if ws != nil {
		layers = append(layers, workspaceLayer(ws))
	}
	layers = append(layers, Defaults())

	var merged Raw
	for _, layer := range layers {
		// Wholesale replacement for mappings: once a higher layer set one,
		// lower layers must not contribute individual entries.
		if merged.Scopes != nil {
			layer.Scopes = nil
		}
		if merged.ScopePathMap != nil {
			layer.ScopePathMap = nil
		}
		if len(merged.ScopeAliases) > 0 {
			layer.ScopeAliases = nil
		}
		// Layers are ordered highest-precedence-first and mergo only fills
		// fields still at their zero value.
		if err := mergo.Merge(&merged, layer); err != nil {
			return Raw{}, errors.Wrap(err, "merging config layers")
		}
	}

	return merged, nil
}

// workspaceLayer lifts the workspace fields recognized by this tool into a
// config layer: langs, the root translations path, and the keysManager
// sub-block.
func workspaceLayer(ws *workspace.Config) Raw {
	return Raw{
		Langs:            ws.Langs,
		TranslationsPath: ws.RootTranslationsPath,
		DefaultValue:     ws.KeysManager.DefaultValue,
		Input:            StringList(ws.KeysManager.Input),
		Output:           ws.KeysManager.Output,
	}
}
