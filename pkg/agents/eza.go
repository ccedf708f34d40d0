package agents

import (
	"fmt"
	"strings"

	"github.com/dyeshell/dye/pkg/pattern"
)

// Eza renders the EZA_COLORS environment variable for eza.
type Eza struct {
	scope *pattern.Scope
}

// ezaBaseCodes uses the same friendly names as eza's own theme.yml,
// category-prefixed where eza groups them.
var ezaBaseCodes = []codePair{
	{"filekinds:normal", "fi"},
	{"filekinds:directory", "di"},
	{"filekinds:symlink", "ln"},
	{"filekinds:pipe", "pi"},
	{"filekinds:block_device", "bd"},
	{"filekinds:char_device", "cd"},
	{"filekinds:socket", "so"},
	{"filekinds:special", "sp"},
	{"filekinds:executable", "ex"},
	{"filekinds:mount_point", "mp"},

	{"perms:user_read", "ur"},
	{"perms:user_write", "uw"},
	{"perms:user_executable_file", "ux"},
	{"perms:user_execute_other", "ue"},
	{"perms:group_read", "gr"},
	{"perms:group_write", "gw"},
	{"perms:group_execute", "gx"},
	{"perms:other_read", "tr"},
	{"perms:other_write", "tw"},
	{"perms:other_execute", "tx"},
	{"perms:special_user_file", "su"},
	{"perms:special_other", "sf"},
	{"perms:attribute", "xa"},

	{"size:major", "df"},
	{"size:minor", "ds"},
	{"size:number_style", "sn"},
	{"size:number_byte", "nb"},
	{"size:number_kilo", "nk"},
	{"size:number_mega", "nm"},
	{"size:number_giga", "ng"},
	{"size:number_huge", "nt"},
	{"size:unit_style", "sb"},
	{"size:unit_byte", "ub"},
	{"size:unit_kilo", "uk"},
	{"size:unit_mega", "um"},
	{"size:unit_giga", "ug"},
	{"size:unit_huge", "ut"},

	{"users:user_you", "uu"},
	{"users:user_other", "un"},
	{"users:user_root", "uR"},
	{"users:group_yours", "gu"},
	{"users:group_other", "gn"},
	{"users:group_root", "gR"},

	{"links:normal", "lc"},
	{"links:multi_link_file", "lm"},

	{"git:new", "ga"},
	{"git:modified", "gm"},
	{"git:deleted", "gd"},
	{"git:renamed", "gv"},
	{"git:typechange", "gt"},
	{"git:ignored", "gi"},
	{"git:conflicted", "gc"},

	{"git_repo:branch_main", "Gm"},
	{"git_repo:branch_other", "Go"},
	{"git_repo:git_clean", "Gc"},
	{"git_repo:git_dirty", "Gd"},

	{"selinux:colon", "Sn"},
	{"selinux:user", "Su"},
	{"selinux:role", "Sr"},
	{"selinux:typ", "St"},
	{"selinux:range", "Sl"},

	{"file_type:image", "im"},
	{"file_type:video", "vi"},
	{"file_type:music", "mu"},
	{"file_type:lossless", "lo"},
	{"file_type:crypto", "cr"},
	{"file_type:document", "do"},
	{"file_type:compressed", "co"},
	{"file_type:temp", "tm"},
	{"file_type:compiled", "cm"},
	{"file_type:build", "bu"},
	{"file_type:source", "sc"},

	{"punctuation", "xx"},
	{"date", "da"},
	{"inode", "in"},
	{"blocks", "bl"},
	{"header", "hd"},
	{"octal", "oc"},
	{"flags", "ff"},
	{"symlink_path", "lp"},
	{"control_char", "cc"},
	{"broken_path_overlay", "b0"},
	{"broken_symlink", "or"},
}

var ezaCodes = codeMap(ezaBaseCodes)

func (a *Eza) Run() (string, error) {
	var outlist []string

	clearBuiltin, _, err := a.scope.BoolKey("clear_builtin")
	if err != nil {
		return "", err
	}
	if clearBuiltin {
		// eza has a builtin token for this instead of needing every
		// code neutralized one by one
		outlist = append(outlist, "reset")
	}

	for _, entry := range a.scope.Styles() {
		if entry.Style.IsEmpty() {
			continue
		}
		// unknown names pass through so users can style arbitrary
		// globs like *.md
		_, fragment, err := lsColorsFromStyle(
			entry.Name, entry.Style, ezaCodes, a.scope.Name, true)
		if err != nil {
			return "", err
		}
		outlist = append(outlist, fragment)
	}

	varname, ok := a.scope.StringKey("environment_variable")
	if !ok {
		varname = "EZA_COLORS"
	}

	// always set the variable, even to "", to tromp over whatever a
	// previous theme left behind
	return fmt.Sprintf(`export %s="%s"`, varname, strings.Join(outlist, ":")), nil
}
