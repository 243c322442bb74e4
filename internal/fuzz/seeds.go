package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 1 << 16
)

var snippetSeeds = []string{
	"",
	"entity e is end entity e;",
	"entity e is port (a : in bit; b : out bit_vector(7 downto 0)); end;",
	"architecture rtl of e is signal s : bit; begin s <= a when b = '1' else '0'; end;",
	"package p is constant c : integer := 16#FF# + 2 ** 3; end package;",
	"library ieee; use ieee.std_logic_1164.all; entity e is end;",
	"architecture a of e is begin process (clk) begin if rising_edge(clk) then q <= d; end if; end process; end;",
	"architecture a of e is begin g: for i in 0 to 3 generate u: entity work.c port map (x => y(i)); end generate; end;",
	"architecture a of e is begin process begin case s is when idle => s <= run; when others => null; end case; wait; end process; end;",
	"entity e is end; -- trailing\n/* block */",
	"entity \\ext id\\ is end;",
	"package p is constant c : string := \"unterminated; end;",
	"entity e is port (a : in bit end;",
	"((((((((((",
	"x\x00y",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".vhd" && ext != ".vhdl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
