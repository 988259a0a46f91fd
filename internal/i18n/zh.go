package i18n

// translation pairs an English format string with its Chinese text. Verbs
// must match the English key.
type translation struct {
	key   string
	value string
}

var simplifiedChinese = []translation{
	// Yes/no and table cells.
	{"yes", "是"},
	{"no", "否"},
	{"none", "无"},
	{"unknown", "未知"},
	{"no tracks to display", "没有轨道信息可显示"},

	// Table headers and type labels.
	{"No.", "编号"},
	{"Type", "类型"},
	{"ID", "ID"},
	{"Language", "语言"},
	{"Codec", "编解码"},
	{"Name", "名称"},
	{"Default", "默认轨"},
	{"Video", "视频"},
	{"Audio", "音频"},
	{"Subtitles", "字幕"},

	// Table titles.
	{"Tracks in %s", "%s 的原始轨道信息"},
	{"Tracks kept", "用户选择后保留的轨道"},
	{"Final track layout", "最终轨道配置"},
	{"Current tracks", "当前轨道配置（可供修改）"},

	// Input file.
	{"Path to the MKV file: ", "请输入 MKV 文件路径: "},
	{"File %q does not exist or is not a regular file. Please try again.", "错误: 文件 %q 不存在或不是一个文件。请重新输入。"},
	{"Warning: %q may not be an MKV file. Continue anyway? (y/N): ", "警告: 文件 %q 可能不是 MKV 文件。是否继续? (y/N): "},
	{"Please answer y or n.", "请输入 y 或 n。"},

	// Selection.
	{"Video tracks", "视频轨道"},
	{"Audio tracks", "音频轨道"},
	{"Subtitle tracks", "字幕轨道"},
	{"video tracks", "视频轨道"},
	{"audio tracks", "音频轨道"},
	{"subtitle tracks", "字幕轨道"},
	{"%s: none found, skipping.", "%s: 此文件中没有可供选择的轨道，跳过。"},
	{"Video tracks are kept automatically.", "视频轨道默认全部保留。"},
	{"Keep which %s? (numbers %d-%d separated by commas, all, or none): ", "保留哪些%s? (编号 %d-%d，用逗号分隔，或输入 all / none): "},
	{"Number %d is out of range; enter numbers between %d and %d.", "无效的轨道编号: %d，请输入 %d 到 %d 之间的编号。"},
	{"Invalid input %q; use numbers separated by commas, all, or none.", "输入格式错误 %q，请输入数字并用逗号分割，或输入 all / none。"},
	{"Invalid input: %v", "无效的输入: %v"},

	// Property editor.
	{"Modify track names or default flags? (y/N): ", "是否修改轨道名称或默认标记? (y/N): "},
	{"Row number to edit, or %s to finish: ", "输入要修改的轨道编号，或输入 %s 完成: "},
	{"Invalid row %q; enter a number between 1 and %d, or %s.", "无效的轨道编号 %q，请输入 1 到 %d 之间的数字或 %s。"},
	{"New name for track %d (current: %s; Enter keeps it, %s removes it): ", "轨道 %d 的新名称（当前: %s；直接回车保持不变，输入 %s 删除名称）: "},
	{"Make track %d the default %s? (y/n, Enter keeps %s): ", "是否将轨道 %d 设为默认%s? (y/n，直接回车保持 %s): "},
	{"Unrecognized answer; default flag unchanged.", "无法识别的输入，默认标记保持不变。"},

	// Output naming.
	{"Output file %s already exists. Overwrite (o), rename (r) or cancel (c)? ", "输出文件 %s 已存在。是否覆盖(o), 重命名(r), 或取消(c)? "},
	{"Please enter o, r or c.", "无效选择，请输入 o、r 或 c。"},
	{"Output will be written to %s", "输出文件将写入 %s"},

	// Execution.
	{"mkvmerge command:", "将执行以下 mkvmerge 命令:"},
	{"Run this command? (y/N): ", "是否继续执行? (y/N): "},
	{"Warning: %s: %s", "警告: %s: %s"},
	{"Output directory", "输出目录"},
	{"Free space", "可用空间"},
	{"Writing %s ...", "正在生成新的 MKV 文件: %s ..."},
	{"Done in %s.", "成功! 用时 %s。"},
	{"Wrote %s (%s).", "已写入 %s (%s)。"},
	{"mkvmerge output:", "mkvmerge 标准输出:"},
	{"mkvmerge warnings/info:", "mkvmerge 警告/信息:"},
	{"mkvmerge errors:", "mkvmerge 错误信息:"},

	// Session outcome.
	{"Operation cancelled; nothing was written.", "操作已取消，未写入任何文件。"},
	{"New file: %s", "新文件: %s"},
}
