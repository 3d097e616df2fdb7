package layout

import (
	pr "github.com/benoitkugler/gridlayout/css/properties"
)

// trackList is the grid-template-rows or grid-template-columns
// property of a container, with at most one auto repeat pattern.
type trackList struct {
	specs []pr.GridSpec // even entries are [pr.GridNames]

	fixedTracks    []pr.GridDims // tracks outside of the auto repeat pattern
	autoRepeat     []pr.GridDims // one repetition of the auto repeat pattern
	autoRepeatType int           // 0, pr.RepeatAutoFill or pr.RepeatAutoFit
	insertionPoint int           // number of tracks before the auto repeat pattern
}

func newTrackList(template pr.GridTemplate) trackList {
	out := trackList{}
	if template.Tag == pr.None {
		return out
	}
	out.specs = template.Names
	count := 0
	var walk func(specs []pr.GridSpec, repeat int)
	walk = func(specs []pr.GridSpec, repeat int) {
		for _, spec := range specs {
			switch spec := spec.(type) {
			case pr.GridDims:
				for i := 0; i < repeat; i++ {
					out.fixedTracks = append(out.fixedTracks, spec)
				}
				count += repeat
			case pr.GridRepeat:
				if spec.Repeat < 0 {
					out.autoRepeatType = spec.Repeat
					out.insertionPoint = count
					for _, s := range spec.Names {
						if dims, ok := s.(pr.GridDims); ok {
							out.autoRepeat = append(out.autoRepeat, dims)
						}
					}
				} else {
					walk(spec.Names, repeat*spec.Repeat)
				}
			}
		}
	}
	walk(template.Names, 1)
	return out
}

func (tl trackList) hasAutoRepeat() bool { return len(tl.autoRepeat) != 0 }

// expand returns the tracks of the explicit grid defined by the template,
// with `autoRepeatTracks` tracks for the auto repeat pattern (a multiple of its length),
// and the names of the lines, merging the names of adjacent lines.
// len(lines) is len(tracks)+1.
func (tl trackList) expand(autoRepeatTracks int) (tracks []pr.GridDims, lines [][]string) {
	repetitions := 0
	if tl.hasAutoRepeat() {
		repetitions = autoRepeatTracks / len(tl.autoRepeat)
	}
	var pending []string
	var walk func(specs []pr.GridSpec)
	walk = func(specs []pr.GridSpec) {
		for _, spec := range specs {
			switch spec := spec.(type) {
			case pr.GridNames:
				pending = append(pending, spec...)
			case pr.GridDims:
				lines = append(lines, pending)
				tracks = append(tracks, spec)
				pending = nil
			case pr.GridRepeat:
				count := spec.Repeat
				if count < 0 {
					count = repetitions
				}
				for i := 0; i < count; i++ {
					walk(spec.Names)
				}
			}
		}
	}
	walk(tl.specs)
	lines = append(lines, pending)
	return tracks, lines
}

// explicitGrid is the explicit grid of one axis, once
// the number of auto repeat tracks is known.
type explicitGrid struct {
	tracks []pr.GridDims // the template tracks; there may be fewer than [count]
	count  int           // number of explicit tracks
	lines  map[string][]int
}

// newExplicitGrid expands the template, and adds the implicit
// lines "<area>-start" and "<area>-end" defined by `areas`.
func newExplicitGrid(axis Axis, template trackList, autoRepeatTracks int, areas pr.GridTemplateAreas) explicitGrid {
	tracks, lineNames := template.expand(autoRepeatTracks)
	out := explicitGrid{tracks: tracks, count: len(tracks), lines: map[string][]int{}}

	areaTracks := len(areas)
	if axis == ForColumns {
		areaTracks = 0
		if len(areas) != 0 {
			areaTracks = len(areas[0])
		}
	}
	if areaTracks > out.count {
		out.count = areaTracks
	}

	add := func(name string, line int) {
		out.lines[name] = insertSorted(out.lines[name], line)
	}
	for line, names := range lineNames {
		for _, name := range names {
			add(name, line)
		}
	}
	seen := map[string]bool{}
	for _, row := range areas {
		for _, name := range row {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			rows, columns, _ := areas.Area(name)
			span := rows
			if axis == ForColumns {
				span = columns
			}
			add(name+"-start", span[0])
			add(name+"-end", span[1])
		}
	}
	return out
}

func insertSorted(list []int, v int) []int {
	i := len(list)
	for i > 0 && list[i-1] > v {
		i--
	}
	if i > 0 && list[i-1] == v {
		return list
	}
	list = append(list, 0)
	copy(list[i+1:], list[i:])
	list[i] = v
	return list
}

// sizingFunctions returns the sizing function of each track of the
// implicit grid, given its size and the explicit grid start.
// Implicit tracks cycle through `auto`, backwards before the explicit grid.
func (eg explicitGrid) sizingFunctions(numTracks, explicitStart int, auto pr.GridAuto) []pr.GridDims {
	if len(auto) == 0 {
		auto = pr.GridAuto{pr.NewGridDimsValue(pr.SToV("auto"))}
	}
	out := make([]pr.GridDims, numTracks)
	reversed := auto.Reverse()
	for i := range out {
		switch index := i - explicitStart; {
		case index < 0:
			out[i] = reversed[(-index-1)%len(reversed)]
		case index < len(eg.tracks):
			out[i] = eg.tracks[index]
		default:
			// includes the explicit tracks only defined by grid-template-areas
			out[i] = auto[(index-len(eg.tracks))%len(auto)]
		}
	}
	return out
}
