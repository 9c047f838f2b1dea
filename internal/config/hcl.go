package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/colorgrid/internal/ctxlog"
)

var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "graph"},
		{Type: "run"},
	},
}

var graphSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "path", Required: true},
	},
}

var runSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "program", Required: true},
		{Name: "workers"},
		{Name: "max_iterations"},
	},
}

// HCLLoader loads run files written in HCL.
type HCLLoader struct {
	parser *hclparse.Parser
}

// NewHCLLoader creates a loader with a fresh parser.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{parser: hclparse.NewParser()}
}

// Load implements Loader. Unknown blocks or attributes are errors, as are
// duplicate or missing graph/run blocks.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading run file.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file: %w", diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid run file: %w", diags)
	}

	graphBlock, err := uniqueBlock(content, "graph")
	if err != nil {
		return nil, err
	}
	runBlock, err := uniqueBlock(content, "run")
	if err != nil {
		return nil, err
	}

	model := &Model{
		Run: RunSection{MaxIterations: UnboundedIterations},
	}

	graphContent, diags := graphBlock.Body.Content(graphSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid graph block: %w", diags)
	}
	if err := decodeAttr(graphContent.Attributes["path"], cty.String, &model.Graph.Path); err != nil {
		return nil, err
	}

	runContent, diags := runBlock.Body.Content(runSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid run block: %w", diags)
	}
	if err := decodeAttr(runContent.Attributes["program"], cty.String, &model.Run.Program); err != nil {
		return nil, err
	}
	if err := decodeAttr(runContent.Attributes["workers"], cty.Number, &model.Run.Workers); err != nil {
		return nil, err
	}
	if err := decodeAttr(runContent.Attributes["max_iterations"], cty.Number, &model.Run.MaxIterations); err != nil {
		return nil, err
	}

	logger.Debug("Run file loaded.", "graphPath", model.Graph.Path, "program", model.Run.Program)
	return model, nil
}

// uniqueBlock returns the single block of the given type, erroring on zero
// or more than one.
func uniqueBlock(content *hcl.BodyContent, blockType string) (*hcl.Block, error) {
	var found *hcl.Block
	for _, block := range content.Blocks.OfType(blockType) {
		if found != nil {
			return nil, fmt.Errorf("duplicate %q block at %s", blockType, block.DefRange)
		}
		found = block
	}
	if found == nil {
		return nil, fmt.Errorf("run file is missing the required %q block", blockType)
	}
	return found, nil
}

// decodeAttr evaluates attr, converts it to the wanted cty type, and binds
// it into target. A nil attr (optional, absent) leaves target untouched.
func decodeAttr(attr *hcl.Attribute, want cty.Type, target any) error {
	if attr == nil {
		return nil
	}
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("failed to evaluate %q: %w", attr.Name, diags)
	}
	val, err := convert.Convert(val, want)
	if err != nil {
		return fmt.Errorf("attribute %q: %w", attr.Name, err)
	}
	if err := gocty.FromCtyValue(val, target); err != nil {
		return fmt.Errorf("attribute %q: %w", attr.Name, err)
	}
	return nil
}
