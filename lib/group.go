package lib

/*
	Group is the components written to one library: one first category in
	one stock tier
*/
type Group struct {
	Name       string
	Components []*Component
}

/*
	GroupComponents partitions components by first category and tier. Groups
	and the components in them keep input order.
*/
func GroupComponents(components []*Component) []*Group {
	groups := []*Group{}
	byName := make(map[string]*Group)

	for _, component := range components {
		name := component.GroupName()
		group, ok := byName[name]
		if !ok {
			group = &Group{Name: name}
			byName[name] = group
			groups = append(groups, group)
		}
		group.Components = append(group.Components, component)
	}

	return groups
}
