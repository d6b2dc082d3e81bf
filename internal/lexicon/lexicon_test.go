package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewNormalizesTerms 验证构造时词条转小写、去空白、跨类别去重
func TestNewNormalizesTerms(t *testing.T) {
	lex := New(map[string][]string{
		"languages": {" Python ", "GO", ""},
		"devops":    {"Docker", "go"},
	})

	assert.True(t, lex.Contains("python"))
	assert.True(t, lex.Contains("Python"))
	assert.True(t, lex.Contains("  GO "))
	assert.True(t, lex.Contains("docker"))
	assert.False(t, lex.Contains(""))
	assert.False(t, lex.Contains("java"))

	// "go" 在两个类别中出现，展开后只保留一份
	assert.Equal(t, 3, lex.Len())
	assert.Equal(t, []string{"docker", "go", "python"}, lex.Terms())
}

// TestCategoriesOrder 验证类别按字典序稳定遍历
func TestCategoriesOrder(t *testing.T) {
	lex := New(map[string][]string{
		"zeta":  {"a"},
		"alpha": {"b"},
		"mid":   {"c"},
	})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, lex.Categories())
	assert.Equal(t, []string{"b"}, lex.CategoryTerms("alpha"))
	assert.Empty(t, lex.CategoryTerms("missing"))
}

// TestScanTextWholeWord 验证整词匹配：子串不算命中
func TestScanTextWholeWord(t *testing.T) {
	lex := New(map[string][]string{
		"languages": {"java", "go", "r"},
	})

	hits := lex.ScanText("Wrote Go services and Java tooling")
	assert.ElementsMatch(t, []string{"java", "go"}, hits)

	// "javascript" 不应命中 "java"，"growth" 不应命中 "go"
	assert.Empty(t, lex.ScanText("javascript growth everywhere"))
	// "r" 作为单词命中，作为字母不命中
	assert.Equal(t, []string{"r"}, lex.ScanText("analysis in R"))
	assert.Empty(t, lex.ScanText("river runs"))
}

// TestScanTextSymbolTerms 验证含符号词条(c++/c#/.net风格)的边界处理
func TestScanTextSymbolTerms(t *testing.T) {
	lex := New(map[string][]string{
		"languages": {"c++", "c#", "c", "node.js"},
	})

	assert.Contains(t, lex.ScanText("expert in C++ development"), "c++")
	assert.Contains(t, lex.ScanText("built services in C# and node.js"), "c#")
	assert.Contains(t, lex.ScanText("systems programming in C"), "c")
	// "c" 不应命中 "c++"/"c#" 中间截断出的内容
	assert.NotContains(t, lex.ScanText("expert in C++ development"), "c")
}

// TestScanTextEmpty 空文本返回空
func TestScanTextEmpty(t *testing.T) {
	lex := Default()
	assert.Empty(t, lex.ScanText(""))
}

// TestLoadFile 验证从YAML文件加载词表
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `languages:
  - Python
  - Go
frameworks:
  - Django
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, lex.Len())
	assert.True(t, lex.Contains("django"))
	assert.Equal(t, []string{"frameworks", "languages"}, lex.Categories())
}

// TestLoadFileErrors 文件缺失、格式损坏、空词表均返回错误
func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("languages: {broken"), 0o644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte(""), 0o644))
	_, err = LoadFile(empty)
	assert.Error(t, err)
}

// TestDefaultLexicon 内置词表覆盖常见技能且可直接用于扫描
func TestDefaultLexicon(t *testing.T) {
	lex := Default()
	assert.True(t, lex.Contains("python"))
	assert.True(t, lex.Contains("kubernetes"))
	assert.True(t, lex.Contains("machine learning"))
	assert.Greater(t, lex.Len(), 100)

	hits := lex.ScanText("Experienced with Python, Django and PostgreSQL on AWS")
	assert.Contains(t, hits, "python")
	assert.Contains(t, hits, "django")
	assert.Contains(t, hits, "postgresql")
	assert.Contains(t, hits, "aws")
}
