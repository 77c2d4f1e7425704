package registry

import (
	"fmt"
	"strings"
)

// DependencyNode is one skill in a depends_on tree.
type DependencyNode struct {
	Skill    Skill
	Children []*DependencyNode
	Deduped  bool // already expanded earlier in the tree
}

// DependencyTree builds the depends_on tree rooted at the named skill.
// A skill reached a second time is marked Deduped and not expanded again.
func (r *Registry) DependencyTree(name string) (*DependencyNode, error) {
	seen := make(map[string]bool)
	return r.buildNode(name, seen)
}

func (r *Registry) buildNode(name string, seen map[string]bool) (*DependencyNode, error) {
	skill, ok := r.Skill(name)
	if !ok {
		return nil, fmt.Errorf("resolving skill %s: not in registry", name)
	}
	node := &DependencyNode{Skill: skill}
	if seen[name] {
		node.Deduped = true
		return node, nil
	}
	seen[name] = true

	for _, dep := range skill.DependsOn {
		child, err := r.buildNode(dep, seen)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}

// Prerequisites returns the transitive dependencies of the named skill,
// dependencies first, excluding the skill itself.
func (r *Registry) Prerequisites(name string) ([]string, error) {
	root, err := r.DependencyTree(name)
	if err != nil {
		return nil, err
	}
	var order []string
	seen := make(map[string]bool)
	flatten(root, seen, &order)
	return order[:len(order)-1], nil
}

func flatten(node *DependencyNode, seen map[string]bool, order *[]string) {
	if node.Deduped || seen[node.Skill.Name] {
		return
	}
	for _, child := range node.Children {
		flatten(child, seen, order)
	}
	seen[node.Skill.Name] = true
	*order = append(*order, node.Skill.Name)
}

// checkCycle walks depends_on edges from name and fails if it returns to a
// skill already on the current path.
func (r *Registry) checkCycle(name string, path []string) error {
	for _, p := range path {
		if p == name {
			return fmt.Errorf("skill dependency cycle: %s", strings.Join(append(path, name), " -> "))
		}
	}
	skill, ok := r.Skill(name)
	if !ok {
		return nil
	}
	path = append(path, name)
	for _, dep := range skill.DependsOn {
		if err := r.checkCycle(dep, path); err != nil {
			return err
		}
	}
	return nil
}
